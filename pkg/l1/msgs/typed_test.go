package msgs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedRoundTrip(t *testing.T) {
	status := &ArmStatus{
		Live: true,
		Channels: []*ArmChannelState{
			{Channel: 0, Name: "base", Degrees: 90, Duty: 3450, Set: true},
			{Channel: 1, Name: "shoulder"},
		},
	}
	typed, err := TypedFrom(status)
	require.NoError(t, err)
	require.True(t, typed.IsEvent())

	data, err := typed.Encode()
	require.NoError(t, err)
	decoded, err := DecodeTyped(data)
	require.NoError(t, err)
	require.Equal(t, ArmStatusEventTypeID, decoded.TypeId)

	msg, err := decoded.Decode()
	require.NoError(t, err)
	got, ok := msg.(*ArmStatus)
	require.True(t, ok)
	require.True(t, got.Live)
	require.Len(t, got.Channels, 2)
	require.Equal(t, "base", got.Channels[0].Name)
	require.Equal(t, int32(90), got.Channels[0].Degrees)
	require.True(t, got.Channels[0].Set)
}

func TestTypedKind(t *testing.T) {
	typed, err := TypedFrom(&ArmMove{Channel: 2, Degrees: 45})
	require.NoError(t, err)
	require.True(t, typed.IsCommand())
	require.False(t, typed.IsEvent())

	msg, err := typed.Decode()
	require.NoError(t, err)
	move, ok := msg.(*ArmMove)
	require.True(t, ok)
	require.Equal(t, uint32(2), move.Channel)
	require.Equal(t, uint32(45), move.Degrees)
}

func TestTypedUnknownType(t *testing.T) {
	typed := &Typed{TypeId: GroupCustom | 0x7fff}
	_, err := typed.Decode()
	require.Error(t, err)
	var unknown *ErrUnknownType
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, GroupCustom|uint32(0x7fff), unknown.TypeID)
}
