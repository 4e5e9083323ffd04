package comm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSender(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSender(&buf)

	require.NoError(t, sender.Move(0, 90))
	require.NoError(t, sender.Reset())
	require.NoError(t, sender.Move(2, 359))
	require.Equal(t, "0090!2359", buf.String())
}

func TestSenderRejectsUnencodable(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSender(&buf)

	require.Equal(t, ErrEncodeChannel, sender.Move(12, 0))
	require.Equal(t, ErrEncodeDegrees, sender.Move(0, 360))
	require.Zero(t, buf.Len())
}
