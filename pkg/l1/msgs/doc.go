// Package msgs provides L1 protocol support and all message schemas.
package msgs

// L1 protocol is communicated between the arm controller and L2
// tools, and uses hardware-agnostic primitives: angles instead of
// wire frames, capabilities instead of channel digits.
//
// Producer: L1 controller (the arm)
// Consumer: L2 tools (teleop, CLI, monitors)
