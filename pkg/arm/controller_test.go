package arm

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/arm.go/pkg/framework"
	"github.com/robotalks/arm.go/pkg/l1"
	l1msgs "github.com/robotalks/arm.go/pkg/l1/msgs"
	"github.com/robotalks/arm.go/pkg/servo"
)

type dutyWrite struct {
	channel int
	duty    int
}

type chanDriver struct {
	writes chan dutyWrite
}

func (d *chanDriver) Configure(channels int) error {
	return nil
}

func (d *chanDriver) SetDuty(channel, duty int) error {
	d.writes <- dutyWrite{channel: channel, duty: duty}
	return nil
}

func requireWrite(t *testing.T, drv *chanDriver, want dutyWrite) {
	t.Helper()
	select {
	case got := <-drv.writes:
		require.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatalf("servo write timeout, want %+v", want)
	}
}

func startLoop(t *testing.T, c *Controller) (*fx.Loop, func(), <-chan error) {
	t.Helper()
	loop := fx.NewLoop()
	loop.Interval = 5 * time.Millisecond
	loop.Add(c)
	ctx, cancel := context.WithCancel(context.Background())
	doneCh := make(chan error, 1)
	go func() { doneCh <- loop.Run(ctx) }()
	return loop, cancel, doneCh
}

func TestControllerMovesFromLink(t *testing.T) {
	rd, wr := io.Pipe()
	drv := &chanDriver{writes: make(chan dutyWrite, 16)}
	rig, err := servo.NewRig(drv, "base", "shoulder", "elbow")
	require.NoError(t, err)
	c := &Controller{Rig: rig, Link: rd, Indicator: NullIndicator{}, HomeDegrees: 90}
	_, cancel, doneCh := startLoop(t, c)

	_, err = wr.Write([]byte("0090"))
	require.NoError(t, err)
	requireWrite(t, drv, dutyWrite{channel: 0, duty: 3450})

	// repeated identical frames produce repeated writes
	_, err = wr.Write([]byte("00900090"))
	require.NoError(t, err)
	requireWrite(t, drv, dutyWrite{channel: 0, duty: 3450})
	requireWrite(t, drv, dutyWrite{channel: 0, duty: 3450})

	// an aborted frame never reaches the servos
	_, err = wr.Write([]byte("00!2180"))
	require.NoError(t, err)
	requireWrite(t, drv, dutyWrite{channel: 2, duty: 4800})

	// noise bytes do not disturb framing
	_, err = wr.Write([]byte{0x00, '1', 0x80, '0', 0x0d, '4', '5'})
	require.NoError(t, err)
	requireWrite(t, drv, dutyWrite{channel: 1, duty: 2775})

	// a command to an unconfigured channel is dropped
	_, err = wr.Write([]byte("9000"))
	require.NoError(t, err)
	// and the pipeline keeps decoding
	_, err = wr.Write([]byte("0000"))
	require.NoError(t, err)
	requireWrite(t, drv, dutyWrite{channel: 0, duty: 2100})

	cancel()
	wr.Close()
	select {
	case err := <-doneCh:
		require.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("loop stop timeout")
	}
}

func TestControllerCommands(t *testing.T) {
	drv := &chanDriver{writes: make(chan dutyWrite, 16)}
	rig, err := servo.NewRig(drv, "base", "shoulder", "elbow")
	require.NoError(t, err)
	c := &Controller{Rig: rig, Indicator: NullIndicator{}, HomeDegrees: 90}
	loop, cancel, doneCh := startLoop(t, c)

	res := doCommand(t, loop, &l1msgs.ArmCapsQuery{})
	caps, ok := res.(*l1msgs.ArmCaps)
	require.True(t, ok)
	require.Equal(t, uint32(3), caps.Channels)
	require.Equal(t, []string{"base", "shoulder", "elbow"}, caps.Names)
	require.Equal(t, uint32(90), caps.HomeDegrees)

	res = doCommand(t, loop, &l1msgs.ArmMove{Channel: 1, Degrees: 180})
	require.IsType(t, &l1msgs.CommandOK{}, res)
	requireWrite(t, drv, dutyWrite{channel: 1, duty: 4800})

	res = doCommand(t, loop, &l1msgs.ArmMove{Channel: 7, Degrees: 10})
	require.IsType(t, &l1msgs.CommandErr{}, res)

	res = doCommand(t, loop, &l1msgs.ArmHome{})
	require.IsType(t, &l1msgs.CommandOK{}, res)
	for i := 0; i < 3; i++ {
		requireWrite(t, drv, dutyWrite{channel: i, duty: 3450})
	}

	res = doCommand(t, loop, &l1msgs.ArmStatusQuery{})
	require.IsType(t, &l1msgs.ArmStatusReply{}, res)
	status := res.(*l1msgs.ArmStatusReply).Status
	require.Len(t, status.Channels, 3)
	require.Equal(t, int32(90), status.Channels[1].Degrees)
	require.True(t, status.Channels[1].Set)
	require.Equal(t, "shoulder", status.Channels[1].Name)

	cancel()
	select {
	case err := <-doneCh:
		require.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("loop stop timeout")
	}
}

type testCommand struct {
	msg    fx.Message
	result chan fx.Message
}

func (c *testCommand) Msg() fx.Message { return c.msg }

func (c *testCommand) Done(m fx.Message) error {
	c.result <- m
	return nil
}

func doCommand(t *testing.T, loop *fx.Loop, msg fx.Message) fx.Message {
	t.Helper()
	cmd := &testCommand{msg: msg, result: make(chan fx.Message, 1)}
	loop.PostMessage(&l1.CommandMsg{Command: cmd})
	loop.TriggerNext()
	select {
	case res := <-cmd.result:
		return res
	case <-time.After(time.Second):
		t.Fatal("command result timeout")
		return nil
	}
}
