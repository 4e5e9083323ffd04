package comm

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type accumStep struct {
	in    []byte
	final Event
	len   int
}

type accumStepBuilder struct {
	steps []accumStep
}

func accumSequence() *accumStepBuilder {
	return &accumStepBuilder{}
}

func (b *accumStepBuilder) step(final Event, length int, in ...byte) *accumStepBuilder {
	b.steps = append(b.steps, accumStep{in: in, final: final, len: length})
	return b
}

// filling buffers bytes without reaching a frame boundary.
func (b *accumStepBuilder) filling(length int, in ...byte) *accumStepBuilder {
	return b.step(EventNone, length, in...)
}

// ignored feeds bytes outside the accept band, expecting no effect.
func (b *accumStepBuilder) ignored(length int, in ...byte) *accumStepBuilder {
	return b.step(EventNone, length, in...)
}

func (b *accumStepBuilder) resets(in ...byte) *accumStepBuilder {
	return b.step(EventReset, 0, in...)
}

func (b *accumStepBuilder) completes(in ...byte) *accumStepBuilder {
	return b.step(EventComplete, FrameLen, in...)
}

// cleared marks an explicit Clear by the caller.
func (b *accumStepBuilder) cleared() *accumStepBuilder {
	return b.step(EventNone, 0)
}

func (b *accumStepBuilder) build() []accumStep {
	return b.steps
}

func TestAccumulator(t *testing.T) {
	testCases := []struct {
		name  string
		steps []accumStep
	}{
		{
			name: "frame per four bytes",
			steps: accumSequence().
				filling(3, '0', '0', '9').
				completes('0').
				cleared().
				completes('2', '3', '5', '9').
				build(),
		},
		{
			name: "reset discards partial frame",
			steps: accumSequence().
				filling(2, '1', '2').
				resets(ResetByte).
				completes('0', '0', '9', '0').
				build(),
		},
		{
			name: "reset byte is not frame data",
			steps: accumSequence().
				resets(ResetByte).
				filling(3, '1', '8', '0').
				completes('0').
				build(),
		},
		{
			name: "noise dropped outside accept band",
			steps: accumSequence().
				filling(1, '7').
				ignored(1, 0, 10, 13, 29, 30, 60, 'A', 0x80, 0xff).
				filling(3, '0', '9').
				completes('0').
				build(),
		},
		{
			name: "band edges buffered even as non digits",
			steps: accumSequence().
				filling(2, 31, 59).
				filling(3, '#').
				completes(';').
				build(),
		},
		{
			name: "stale frame dropped when caller skips clear",
			steps: accumSequence().
				completes('0', '0', '9', '0').
				filling(1, '1').
				filling(3, '8', '0').
				completes('5').
				build(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var accum Accumulator
			now := time.Unix(100, 0)
			for n, s := range tc.steps {
				if len(s.in) == 0 {
					accum.Clear()
					require.Equalf(t, s.len, accum.Len(), "steps[%d] len mismatch", n)
					continue
				}
				var ev Event
				for i, b := range s.in {
					now = now.Add(time.Millisecond)
					ev = accum.Offer(b, now)
					if i+1 < len(s.in) {
						require.Equalf(t, EventNone, ev, "steps[%d][%d] expect no boundary", n, i)
					}
					require.Truef(t, accum.Len() <= FrameLen, "steps[%d][%d] overflow", n, i)
				}
				require.Equalf(t, s.final, ev, "steps[%d] final mismatch", n)
				require.Equalf(t, s.len, accum.Len(), "steps[%d] len mismatch", n)
			}
		})
	}
}

func TestAccumulatorFrame(t *testing.T) {
	var accum Accumulator
	now := time.Unix(100, 0)
	for _, b := range []byte("009") {
		require.Equal(t, EventNone, accum.Offer(b, now))
	}
	require.Equal(t, EventComplete, accum.Offer('0', now))
	require.Equal(t, Frame{'0', '0', '9', '0'}, accum.Frame())
	require.Equal(t, "0090", accum.Frame().String())
	accum.Clear()
	require.Equal(t, 0, accum.Len())
}

func TestAccumulatorTraffic(t *testing.T) {
	var accum Accumulator
	require.True(t, accum.LastReceived().IsZero())

	t0 := time.Unix(100, 0)
	require.Equal(t, EventNone, accum.Offer('1', t0))
	require.Equal(t, t0, accum.LastReceived())

	// noise never counts as traffic
	for _, b := range []byte{0, 10, 13, 30, 60, 'A', 0xff} {
		require.Equal(t, EventNone, accum.Offer(b, t0.Add(time.Second)))
		require.Equal(t, t0, accum.LastReceived())
		require.Equal(t, 1, accum.Len())
	}

	// a reset still counts as traffic
	t1 := t0.Add(2 * time.Second)
	require.Equal(t, EventReset, accum.Offer(ResetByte, t1))
	require.Equal(t, t1, accum.LastReceived())

	// clearing a frame does not
	require.Equal(t, EventComplete, offerAll(&accum, t1, "0090"))
	accum.Clear()
	require.Equal(t, t1, accum.LastReceived())
}

func offerAll(accum *Accumulator, now time.Time, in string) (ev Event) {
	for _, b := range []byte(in) {
		ev = accum.Offer(b, now)
	}
	return
}

func TestAccepted(t *testing.T) {
	testCases := []struct {
		b      byte
		accept bool
	}{
		{0, false},
		{10, false},
		{13, false},
		{30, false},
		{31, true},
		{ResetByte, true},
		{'0', true},
		{'9', true},
		{59, true},
		{60, false},
		{'A', false},
		{0xff, false},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d", tc.b), func(t *testing.T) {
			require.Equal(t, tc.accept, Accepted(tc.b))
		})
	}
}
