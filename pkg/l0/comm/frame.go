package comm

import "time"

// FrameLen is the number of bytes in a complete frame.
const FrameLen = 4

// Frame is one complete command frame: a channel digit followed by
// three angle digits.
type Frame [FrameLen]byte

func (f Frame) String() string {
	return string(f[:])
}

// Event is the outcome of offering one byte to an Accumulator.
type Event int

const (
	// EventNone means no frame boundary: the byte was buffered or dropped.
	EventNone Event = iota
	// EventReset means a reset byte discarded the partial frame.
	EventReset
	// EventComplete means a frame filled up. The caller must take
	// Frame() and call Clear() before offering more bytes.
	EventComplete
)

func (e Event) String() string {
	switch e {
	case EventReset:
		return "reset"
	case EventComplete:
		return "complete"
	}
	return "none"
}

// ResetByte aborts the frame being accumulated.
const ResetByte byte = '!'

// Bounds of the accepted byte band, both exclusive.
const (
	acceptAbove byte = 30
	acceptBelow byte = 60
)

// Accepted reports whether b belongs to the protocol alphabet.
// The band covers the digits and ResetByte; everything else on the
// wire is noise and must not reach the accumulator state.
func Accepted(b byte) bool {
	return b > acceptAbove && b < acceptBelow
}

// Accumulator assembles accepted bytes into frames.
// Not safe for concurrent use: feed it from a single loop.
type Accumulator struct {
	buf    Frame
	used   int
	lastRx time.Time
}

// Offer consumes one byte received from the transport at time now.
//
// Bytes outside the accepted band are ignored entirely: no buffer
// change, no receive-time update. Accepted bytes are buffered as-is,
// digits or not; decoding sorts that out later.
func (a *Accumulator) Offer(b byte, now time.Time) Event {
	if !Accepted(b) {
		return EventNone
	}
	a.lastRx = now
	if b == ResetByte {
		a.used = 0
		return EventReset
	}
	if a.used >= FrameLen {
		// caller skipped Clear after EventComplete, drop the stale frame
		a.used = 0
	}
	a.buf[a.used] = b
	a.used++
	if a.used == FrameLen {
		return EventComplete
	}
	return EventNone
}

// Frame returns the assembled frame. Meaningful only right after
// Offer returned EventComplete.
func (a *Accumulator) Frame() Frame {
	return a.buf
}

// Len returns the number of buffered bytes.
func (a *Accumulator) Len() int {
	return a.used
}

// Clear discards buffered bytes. The receive time is kept.
func (a *Accumulator) Clear() {
	a.used = 0
}

// LastReceived returns the arrival time of the last accepted byte.
// The zero time means nothing acceptable was ever received.
func (a *Accumulator) LastReceived() time.Time {
	return a.lastRx
}
