// Package comm provides L0 protocol support.
package comm

// L0 protocol is communicated between L1 controller and L0 firmware
// over a byte-oriented wireless serial link, and focuses on being
// trivially decodable on a microcontroller.
//
// A frame is 4 ASCII digits: the servo channel followed by a 3-digit
// angle in degrees, most significant digit first. The byte '!'
// aborts a partially received frame. Bytes outside a narrow
// printable band are treated as line noise and dropped, which keeps
// the receiver stable across modem chatter and connect garbage.
// There are no acknowledgments and no flow control: commands travel
// one way and the most recent frame wins.
//
// Producer: L1 controller
// Consumer: L0 firmware
