package comm

import (
	"errors"
	"fmt"
)

var (
	// ErrEncodeChannel indicates the channel doesn't fit a frame digit.
	ErrEncodeChannel = errors.New("channel not a single digit")
	// ErrEncodeDegrees indicates the angle doesn't fit the nominal
	// 3-digit range.
	ErrEncodeDegrees = errors.New("degrees out of 0..359")
)

// ChannelError reports a decoded channel with no servo behind it.
// Frames carrying such a channel are rejected before they reach
// hardware instead of indexing past the configured outputs.
type ChannelError struct {
	Channel  int
	Channels int
}

// Error implements error.
func (e *ChannelError) Error() string {
	return fmt.Sprintf("channel %d out of range (%d configured)", e.Channel, e.Channels)
}
