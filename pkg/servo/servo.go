// Package servo maps target angles to PWM duty counts and drives a
// rig of servo channels through a hardware driver.
package servo

import (
	"errors"
	"time"
)

// ErrNoChannels indicates a rig with no channels configured.
var ErrNoChannels = errors.New("no servo channels")

// ErrChannelRange indicates a channel outside the configured rig.
var ErrChannelRange = errors.New("channel out of range")

// Driver outputs PWM duty counts to hardware channels.
type Driver interface {
	// Configure prepares the given number of channels, running at
	// PWMFrequencyHz with PWMResolutionBits of duty resolution.
	// Must be called once before SetDuty.
	Configure(channels int) error
	// SetDuty sets the duty count on one channel.
	SetDuty(channel, duty int) error
}

// State is the last commanded position of one channel.
type State struct {
	Degrees int
	Duty    int
	Set     bool
	At      time.Time
}

// Rig drives a set of named servo channels through a Driver.
// Not safe for concurrent use: drive it from the control loop.
type Rig struct {
	driver   Driver
	channels int
	names    []string
	states   []State
}

// NewRig configures the driver for one channel per name.
func NewRig(driver Driver, names ...string) (*Rig, error) {
	if len(names) == 0 {
		return nil, ErrNoChannels
	}
	if err := driver.Configure(len(names)); err != nil {
		return nil, err
	}
	return &Rig{
		driver:   driver,
		channels: len(names),
		names:    names,
		states:   make([]State, len(names)),
	}, nil
}

// Channels returns the number of configured channels.
func (r *Rig) Channels() int {
	return r.channels
}

// Names returns channel names, indexed by channel.
func (r *Rig) Names() []string {
	return r.names
}

// Move drives one channel to a target angle. Every call reaches the
// hardware: repeated identical targets produce repeated writes.
func (r *Rig) Move(channel, degrees int, now time.Time) error {
	if channel < 0 || channel >= r.channels {
		return ErrChannelRange
	}
	duty := DutyForAngle(degrees)
	if err := r.driver.SetDuty(channel, duty); err != nil {
		return err
	}
	r.states[channel] = State{Degrees: degrees, Duty: duty, Set: true, At: now}
	return nil
}

// Home drives every channel to the same angle.
func (r *Rig) Home(degrees int, now time.Time) error {
	for ch := 0; ch < r.channels; ch++ {
		if err := r.Move(ch, degrees, now); err != nil {
			return err
		}
	}
	return nil
}

// States returns a copy of the last commanded states.
func (r *Rig) States() []State {
	out := make([]State, len(r.states))
	copy(out, r.states)
	return out
}
