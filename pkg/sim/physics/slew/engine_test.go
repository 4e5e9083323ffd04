package slew

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/arm.go/pkg/servo"
)

// tick is a fixed-time physics context.
type tick time.Time

func (c tick) Time() time.Time          { return time.Time(c) }
func (c tick) Context() context.Context { return context.Background() }

func TestMotionEstimate(t *testing.T) {
	testCases := []struct {
		name   string
		start  float64
		target float64
		speed  float64
		after  time.Duration
		expect float64
		moving bool
	}{
		{
			name:   "in flight",
			target: 90,
			speed:  45,
			after:  time.Second,
			expect: 45,
			moving: true,
		},
		{
			name:   "settles",
			target: 90,
			speed:  45,
			after:  2 * time.Second,
			expect: 90,
		},
		{
			name:   "holds after settling",
			target: 90,
			speed:  45,
			after:  5 * time.Second,
			expect: 90,
		},
		{
			name:   "reverse",
			start:  180,
			target: 90,
			speed:  45,
			after:  time.Second,
			expect: 135,
			moving: true,
		},
		{
			name:   "already there",
			start:  90,
			target: 90,
			speed:  45,
			after:  time.Second,
			expect: 90,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var baseTime time.Time
			m := &motion{
				start:     tc.start,
				target:    tc.target,
				startTime: baseTime,
				speed:     tc.speed,
			}
			degrees, next := m.estimate(baseTime.Add(tc.after))
			require.Equal(t, tc.expect, degrees)
			require.Equal(t, tc.moving, next != nil)
		})
	}
}

func TestEngineDrivesRig(t *testing.T) {
	e := New(45)
	rig, err := servo.NewRig(e, "base", "shoulder")
	require.NoError(t, err)

	baseTime := time.Unix(100, 0)
	e.Advance(tick(baseTime))
	require.NoError(t, rig.Move(0, 90, baseTime))

	e.Advance(tick(baseTime.Add(time.Second)))
	require.Equal(t, []float64{45, 0}, e.Degrees())
	require.True(t, e.Moving())

	e.Advance(tick(baseTime.Add(2 * time.Second)))
	require.Equal(t, []float64{90, 0}, e.Degrees())
	require.False(t, e.Moving())

	// retarget mid flight resumes from the estimate
	require.NoError(t, rig.Move(0, 0, baseTime))
	e.Advance(tick(baseTime.Add(3 * time.Second)))
	require.Equal(t, []float64{45, 0}, e.Degrees())
}

func TestEngineSnapsWithoutSpeed(t *testing.T) {
	e := New(0)
	require.NoError(t, e.Configure(1))
	require.NoError(t, e.SetDuty(0, servo.DutyForAngle(180)))
	require.Equal(t, []float64{180}, e.Degrees())
	require.False(t, e.Moving())
	require.True(t, e.TakeChanged())
	require.False(t, e.TakeChanged())
}
