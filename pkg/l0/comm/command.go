package comm

// Command is a decoded frame: drive servo Channel to Degrees.
type Command struct {
	Channel int
	Degrees int
}

// Command decodes a frame. Byte 0 selects the channel, bytes 1..3
// spell the angle in decimal, most significant digit first.
// Decoding is plain unchecked arithmetic: accepted bytes that are
// not digits come out as out-of-range numbers. Check guards the
// channel before dispatch; angles stay unchecked.
func (f Frame) Command() Command {
	return Command{
		Channel: int(f[0]) - '0',
		Degrees: 100*(int(f[1])-'0') + 10*(int(f[2])-'0') + int(f[3]) - '0',
	}
}

// Check validates the command against the number of configured
// channels. Angles are not range checked: the duty mapping is
// defined for any angle and physical limits are the driver's call.
func (c Command) Check(channels int) error {
	if c.Channel < 0 || c.Channel >= channels {
		return &ChannelError{Channel: c.Channel, Channels: channels}
	}
	return nil
}

// Frame encodes the command for the wire.
func (c Command) Frame() (Frame, error) {
	return MakeFrame(c.Channel, c.Degrees)
}

// Nominal protocol ranges enforced when encoding.
const (
	MaxChannel = 9
	MaxDegrees = 359
)

// MakeFrame encodes a channel and an angle as frame digits.
// Encoding is stricter than decoding: senders keep to the nominal
// protocol ranges.
func MakeFrame(channel, degrees int) (f Frame, err error) {
	if channel < 0 || channel > MaxChannel {
		return f, ErrEncodeChannel
	}
	if degrees < 0 || degrees > MaxDegrees {
		return f, ErrEncodeDegrees
	}
	f[0] = '0' + byte(channel)
	f[1] = '0' + byte(degrees/100)
	f[2] = '0' + byte(degrees/10%10)
	f[3] = '0' + byte(degrees%10)
	return f, nil
}
