// Package device reads Linux game controllers through the kernel
// joystick interface (/dev/input/jsN).
package device

import "io"

// Kind classifies input events.
type Kind uint8

// Event kinds.
const (
	Axis Kind = iota + 1
	Button
)

// Event is one state change reported by an input device. Right after
// open the driver dumps the resting state with Init set, those events
// are not user input.
type Event struct {
	Kind  Kind
	Index int
	Value int
	Init  bool
}

// Pressed interprets the value of a button event.
func (e Event) Pressed() bool { return e.Value != 0 }

// Device is an opened game controller.
type Device interface {
	io.Closer
	// Index is the system index of the device.
	Index() int
	// Name is the device name the driver reports.
	Name() string
	// Axes is the number of axes.
	Axes() int
	// Buttons is the number of buttons.
	Buttons() int
	// ReadEvent blocks for the next axis or button event.
	ReadEvent() (Event, error)
}
