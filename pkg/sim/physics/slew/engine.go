// Package slew simulates servo motion: channels slew toward the
// commanded angle at finite speed instead of snapping.
package slew

import (
	"math"
	"time"

	fx "github.com/robotalks/arm.go/pkg/framework"
	"github.com/robotalks/arm.go/pkg/servo"
	"github.com/robotalks/arm.go/pkg/sim/physics"
)

// DefaultSpeed is the default slew speed in degrees per second.
const DefaultSpeed float64 = 240

// Engine implements servo.Driver with simulated motion. Duty counts
// written by the rig are mapped back to angles, and the channels
// move toward them as loop time advances. Speed 0 snaps instantly.
type Engine struct {
	Speed float64

	now      time.Time
	channels []channel
	changed  bool
}

type channel struct {
	degrees float64
	motion  *motion
}

type motion struct {
	start     float64
	target    float64
	startTime time.Time
	speed     float64
}

func (m *motion) estimate(now time.Time) (float64, *motion) {
	moved := now.Sub(m.startTime).Seconds() * m.speed
	if diff := math.Abs(m.target - m.start); moved >= diff {
		return m.target, nil
	}
	if m.target < m.start {
		moved = -moved
	}
	return m.start + moved, m
}

// New creates the engine.
func New(speed float64) *Engine {
	return &Engine{Speed: speed}
}

// Configure implements Driver.
func (e *Engine) Configure(channels int) error {
	e.channels = make([]channel, channels)
	return nil
}

// SetDuty implements Driver. The motion starts at the last estimate
// and at the last observed loop time: positions commanded before the
// first Advance settle immediately.
func (e *Engine) SetDuty(ch, duty int) error {
	if ch < 0 || ch >= len(e.channels) {
		return servo.ErrChannelRange
	}
	c := &e.channels[ch]
	target := servo.DegreesForDuty(duty)
	if e.Speed <= 0 {
		c.degrees, c.motion = target, nil
	} else {
		c.motion = &motion{
			start:     c.degrees,
			target:    target,
			startTime: e.now,
			speed:     e.Speed,
		}
	}
	e.changed = true
	return nil
}

// Advance estimates channel positions at the context time.
func (e *Engine) Advance(pctx physics.Context) {
	now := pctx.Time()
	e.now = now
	for i := range e.channels {
		c := &e.channels[i]
		if c.motion == nil {
			continue
		}
		c.degrees, c.motion = c.motion.estimate(now)
		e.changed = true
	}
}

// Degrees returns the estimated position of every channel.
func (e *Engine) Degrees() []float64 {
	out := make([]float64, len(e.channels))
	for i := range e.channels {
		out[i] = e.channels[i].degrees
	}
	return out
}

// Moving indicates whether any channel is still in flight.
func (e *Engine) Moving() bool {
	for i := range e.channels {
		if e.channels[i].motion != nil {
			return true
		}
	}
	return false
}

// TakeChanged reports whether any position changed since the last
// call, and resets the flag.
func (e *Engine) TakeChanged() bool {
	changed := e.changed
	e.changed = false
	return changed
}

// AddToLoop implements LoopAdder. The control context serves as the
// physics context, every iteration advances the motion.
func (e *Engine) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvSense, fx.ControlFunc(func(cc fx.ControlContext) error {
		e.Advance(cc)
		return nil
	}))
}
