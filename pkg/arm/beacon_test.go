package arm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBeaconBlinks(t *testing.T) {
	var b Beacon
	start := time.Unix(1000, 0)
	last := start
	require.False(t, b.Tick(start, last))
	require.False(t, b.Tick(start.Add(100*time.Millisecond), last))
	require.True(t, b.Tick(start.Add(200*time.Millisecond), last))
	require.True(t, b.Tick(start.Add(300*time.Millisecond), last))
	require.False(t, b.Tick(start.Add(400*time.Millisecond), last))
	// the phase catches up across a long gap between ticks
	require.True(t, b.Tick(start.Add(time.Second), start.Add(900*time.Millisecond)))
}

func TestBeaconDarkWhenIdle(t *testing.T) {
	var b Beacon
	start := time.Unix(1000, 0)
	require.False(t, b.Tick(start, time.Time{}))
	// on phase, but no byte ever received
	require.False(t, b.Tick(start.Add(200*time.Millisecond), time.Time{}))
	last := start.Add(250 * time.Millisecond)
	require.False(t, b.Tick(start.Add(400*time.Millisecond), last))
	require.True(t, b.Tick(start.Add(600*time.Millisecond), last))
	// on phase again, but the last byte is over a second old
	require.False(t, b.Tick(start.Add(1400*time.Millisecond), last))
}

func TestRecentWindow(t *testing.T) {
	last := time.Unix(1000, 0)
	require.True(t, Recent(last, last))
	require.True(t, Recent(last.Add(999*time.Millisecond), last))
	require.False(t, Recent(last.Add(time.Second), last))
	require.False(t, Recent(last.Add(1001*time.Millisecond), last))
	require.False(t, Recent(last, time.Time{}))
}
