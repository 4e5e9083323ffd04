package servo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type dutyWrite struct {
	channel int
	duty    int
}

type fakeDriver struct {
	channels int
	writes   []dutyWrite
	failNext error
}

func (d *fakeDriver) Configure(channels int) error {
	d.channels = channels
	return nil
}

func (d *fakeDriver) SetDuty(channel, duty int) error {
	if err := d.failNext; err != nil {
		d.failNext = nil
		return err
	}
	d.writes = append(d.writes, dutyWrite{channel: channel, duty: duty})
	return nil
}

func TestRigMove(t *testing.T) {
	driver := &fakeDriver{}
	rig, err := NewRig(driver, "base", "shoulder", "elbow")
	require.NoError(t, err)
	require.Equal(t, 3, rig.Channels())
	require.Equal(t, 3, driver.channels)

	now := time.Unix(100, 0)
	require.NoError(t, rig.Move(0, 90, now))
	require.NoError(t, rig.Move(2, 359, now))
	require.Equal(t, []dutyWrite{
		{channel: 0, duty: 3450},
		{channel: 2, duty: 7485},
	}, driver.writes)

	states := rig.States()
	require.True(t, states[0].Set)
	require.Equal(t, 90, states[0].Degrees)
	require.Equal(t, 3450, states[0].Duty)
	require.Equal(t, now, states[0].At)
	require.False(t, states[1].Set)
	require.True(t, states[2].Set)
}

func TestRigRepeatedMovesAllReachHardware(t *testing.T) {
	driver := &fakeDriver{}
	rig, err := NewRig(driver, "base")
	require.NoError(t, err)

	now := time.Unix(100, 0)
	require.NoError(t, rig.Move(0, 90, now))
	require.NoError(t, rig.Move(0, 90, now.Add(time.Second)))
	require.Equal(t, []dutyWrite{
		{channel: 0, duty: 3450},
		{channel: 0, duty: 3450},
	}, driver.writes)
}

func TestRigChannelRange(t *testing.T) {
	driver := &fakeDriver{}
	rig, err := NewRig(driver, "base", "shoulder")
	require.NoError(t, err)

	now := time.Unix(100, 0)
	require.Equal(t, ErrChannelRange, rig.Move(2, 90, now))
	require.Equal(t, ErrChannelRange, rig.Move(-1, 90, now))
	require.Empty(t, driver.writes)
}

func TestRigHome(t *testing.T) {
	driver := &fakeDriver{}
	rig, err := NewRig(driver, "base", "shoulder", "elbow")
	require.NoError(t, err)

	require.NoError(t, rig.Home(90, time.Unix(100, 0)))
	require.Equal(t, []dutyWrite{
		{channel: 0, duty: 3450},
		{channel: 1, duty: 3450},
		{channel: 2, duty: 3450},
	}, driver.writes)
}

func TestRigDriverError(t *testing.T) {
	driver := &fakeDriver{failNext: ErrChannelRange}
	rig, err := NewRig(driver, "base")
	require.NoError(t, err)

	now := time.Unix(100, 0)
	require.Error(t, rig.Move(0, 90, now))
	// a failed write never records a state
	require.False(t, rig.States()[0].Set)
}

func TestNewRigNoChannels(t *testing.T) {
	_, err := NewRig(&fakeDriver{})
	require.Equal(t, ErrNoChannels, err)
}
