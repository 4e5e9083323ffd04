package comm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameCommand(t *testing.T) {
	testCases := []struct {
		frame   string
		channel int
		degrees int
	}{
		{"0090", 0, 90},
		{"0000", 0, 0},
		{"1180", 1, 180},
		{"2359", 2, 359},
		// decode is unchecked, Check rejects later
		{"9999", 9, 999},
	}
	for _, tc := range testCases {
		t.Run(tc.frame, func(t *testing.T) {
			var f Frame
			copy(f[:], tc.frame)
			cmd := f.Command()
			require.Equal(t, tc.channel, cmd.Channel)
			require.Equal(t, tc.degrees, cmd.Degrees)
		})
	}
}

func TestCommandCheck(t *testing.T) {
	require.NoError(t, Command{Channel: 0, Degrees: 90}.Check(3))
	require.NoError(t, Command{Channel: 2, Degrees: 359}.Check(3))

	err := Command{Channel: 3, Degrees: 90}.Check(3)
	require.Error(t, err)
	var cerr *ChannelError
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, 3, cerr.Channel)
	require.Equal(t, 3, cerr.Channels)

	// '#' passed the accept band but decodes to a negative channel
	f := Frame{'#', '0', '9', '0'}
	require.Error(t, f.Command().Check(3))
}

func TestMakeFrame(t *testing.T) {
	f, err := MakeFrame(0, 90)
	require.NoError(t, err)
	require.Equal(t, "0090", f.String())

	f, err = MakeFrame(2, 359)
	require.NoError(t, err)
	require.Equal(t, "2359", f.String())

	_, err = MakeFrame(10, 0)
	require.Equal(t, ErrEncodeChannel, err)
	_, err = MakeFrame(-1, 0)
	require.Equal(t, ErrEncodeChannel, err)
	_, err = MakeFrame(0, 360)
	require.Equal(t, ErrEncodeDegrees, err)
	_, err = MakeFrame(0, -1)
	require.Equal(t, ErrEncodeDegrees, err)
}

func TestCommandFrame(t *testing.T) {
	cmd := Command{Channel: 1, Degrees: 245}
	f, err := cmd.Frame()
	require.NoError(t, err)
	require.Equal(t, cmd, f.Command())
}
