package arm

import (
	"context"
	"io"

	"github.com/golang/glog"

	fx "github.com/robotalks/arm.go/pkg/framework"
	"github.com/robotalks/arm.go/pkg/l0/comm"
	"github.com/robotalks/arm.go/pkg/l1"
	env "github.com/robotalks/arm.go/pkg/l1/env/controller"
	l1msgs "github.com/robotalks/arm.go/pkg/l1/msgs"
	"github.com/robotalks/arm.go/pkg/servo"
)

// Controller is the L1 controller of the arm: the firmware loop.
// It consumes the L0 byte stream, decodes motion frames, drives the
// servo rig and keeps the liveness indicator blinking while bytes
// keep arriving.
type Controller struct {
	Env         *env.Env
	Rig         *servo.Rig
	Link        io.Reader
	LinkPolls   bool // Link returns timeout errors instead of blocking
	Indicator   Indicator
	HomeDegrees int

	accum  comm.Accumulator
	beacon Beacon
	live   bool

	statusChanged bool
}

// NewController creates a Controller.
func NewController(e *env.Env) *Controller {
	return &Controller{
		Env:         e,
		Indicator:   NullIndicator{},
		HomeDegrees: defaultConfig.HomeDegrees,
	}
}

// Name implements Named.
func (c *Controller) Name() string {
	return c.Env.Config.Info.Ref.Name()
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	if c.Link != nil {
		loop.AddRunnable(c)
		if r, ok := c.Link.(fx.Runnable); ok {
			loop.AddRunnable(r)
		}
	}
	loop.AddController(fx.PrLvControl, c)
	loop.AddController(fx.PrLvActuate, fx.ControlFunc(c.actuate))
	loop.AddController(fx.PrLvPostProc, fx.ControlFunc(c.postProc))
}

// Run implements Runnable. It pumps bytes from the L0 link into the
// loop, one message per byte.
func (c *Controller) Run(ctx context.Context) error {
	loopCtl := fx.LoopCtlFrom(ctx)
	pump := &comm.Pump{
		Reader:      c.Link,
		ReadTimeout: c.LinkPolls,
		Handler: comm.HandleByteFunc(func(_ context.Context, b byte) {
			loopCtl.PostMessage(&byteMsg{b: b})
			loopCtl.TriggerNext()
		}),
	}
	return pump.Run(ctx)
}

// Control implements Controller. It feeds received bytes through the
// frame accumulator and turns complete frames into motion messages
// observed by the actuation phase in the same iteration.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		switch msg := mctx.CurrentMessage().(type) {
		case *byteMsg:
			mctx.MessageTaken()
			if err := c.feed(cc, mctx, msg.b); err != nil {
				glog.Warningf("command rejected: %v", err)
			}
		case *l1.CommandMsg:
			c.handleCommand(cc, mctx, msg)
		}
	}))
	return nil
}

// feed offers one byte to the accumulator. A completed frame is
// decoded, checked against the rig and queued for actuation.
func (c *Controller) feed(cc fx.ControlContext, mctx fx.MessageProcessingContext, b byte) error {
	if c.accum.Offer(b, cc.Time()) != comm.EventComplete {
		return nil
	}
	cmd := c.accum.Frame().Command()
	c.accum.Clear()
	if err := cmd.Check(c.Rig.Channels()); err != nil {
		return err
	}
	glog.V(2).Infof("command: servo %d to %d degrees", cmd.Channel, cmd.Degrees)
	mctx.AddMessages(&moveMsg{cmd: cmd})
	return nil
}

func (c *Controller) handleCommand(cc fx.ControlContext, mctx fx.MessageProcessingContext, cmdMsg *l1.CommandMsg) {
	switch m := cmdMsg.Command.Msg().(type) {
	case *l1msgs.ArmCapsQuery:
		mctx.MessageTaken()
		cmdMsg.Command.Done(c.caps())
	case *l1msgs.ArmStatusQuery:
		mctx.MessageTaken()
		cmdMsg.Command.Done(&l1msgs.ArmStatusReply{Status: c.statusMsg()})
	case *l1msgs.ArmMove:
		mctx.MessageTaken()
		cmdMsg.Command.Done(c.injectMove(cc, mctx, m))
	case *l1msgs.ArmHome:
		mctx.MessageTaken()
		mctx.AddMessages(&moveMsg{home: true})
		cmdMsg.Command.Done(l1msgs.NewCommandOK())
	case *l1msgs.ArmFrame:
		mctx.MessageTaken()
		cmdMsg.Command.Done(c.injectRaw(cc, mctx, m.Data))
	case *l1msgs.ArmReset:
		mctx.MessageTaken()
		c.feed(cc, mctx, comm.ResetByte)
		cmdMsg.Command.Done(l1msgs.NewCommandOK())
	}
}

// injectMove re-encodes an ArmMove as a wire frame and feeds it
// through the same accumulator as the L0 stream, preceded by a reset
// byte so a partial wire frame is never corrupted.
func (c *Controller) injectMove(cc fx.ControlContext, mctx fx.MessageProcessingContext, m *l1msgs.ArmMove) fx.Message {
	f, err := comm.MakeFrame(int(m.Channel), int(m.Degrees))
	if err != nil {
		return l1msgs.NewCommandErr(err)
	}
	c.feed(cc, mctx, comm.ResetByte)
	return c.injectRaw(cc, mctx, f[:])
}

func (c *Controller) injectRaw(cc fx.ControlContext, mctx fx.MessageProcessingContext, data []byte) fx.Message {
	for _, b := range data {
		if err := c.feed(cc, mctx, b); err != nil {
			return l1msgs.NewCommandErr(err)
		}
	}
	return l1msgs.NewCommandOK()
}

// actuate drives the rig from queued motion messages. Failures are
// logged and dropped: the loop never stops for a bad actuation.
func (c *Controller) actuate(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		msg, ok := mctx.CurrentMessage().(*moveMsg)
		if !ok {
			return
		}
		mctx.MessageTaken()
		var err error
		if msg.home {
			err = c.Rig.Home(c.HomeDegrees, cc.Time())
		} else {
			err = c.Rig.Move(msg.cmd.Channel, msg.cmd.Degrees, cc.Time())
		}
		if err != nil {
			glog.Errorf("actuate error: %v", err)
			return
		}
		c.statusChanged = true
	}))
	return nil
}

// postProc updates the liveness indicator and publishes status
// changes.
func (c *Controller) postProc(cc fx.ControlContext) error {
	now := cc.Time()
	lastRx := c.accum.LastReceived()
	if err := c.Indicator.SetLive(c.beacon.Tick(now, lastRx)); err != nil {
		glog.Errorf("indicator error: %v", err)
	}
	if live := Recent(now, lastRx); live != c.live {
		c.live = live
		c.statusChanged = true
	}
	return c.notifyStatusChange(cc)
}

func (c *Controller) notifyStatusChange(cc fx.ControlContext) error {
	changed := c.statusChanged
	c.statusChanged = false
	if !changed || c.Env == nil || c.Env.Registrar == nil {
		return nil
	}
	return c.Env.Registrar.SendEvent(cc.Context(), c.statusMsg())
}

func (c *Controller) caps() *l1msgs.ArmCaps {
	return &l1msgs.ArmCaps{
		Channels:    uint32(c.Rig.Channels()),
		Names:       c.Rig.Names(),
		DegreesMax:  comm.MaxDegrees,
		HomeDegrees: uint32(c.HomeDegrees),
	}
}

func (c *Controller) statusMsg() *l1msgs.ArmStatus {
	names := c.Rig.Names()
	status := &l1msgs.ArmStatus{Live: c.live}
	for i, s := range c.Rig.States() {
		status.Channels = append(status.Channels, &l1msgs.ArmChannelState{
			Channel: uint32(i),
			Name:    names[i],
			Degrees: int32(s.Degrees),
			Duty:    int32(s.Duty),
			Set:     s.Set,
		})
	}
	return status
}

type byteMsg struct {
	b byte
}

func (m *byteMsg) NewMessage() fx.Message { return &byteMsg{} }

type moveMsg struct {
	cmd  comm.Command
	home bool
}

func (m *moveMsg) NewMessage() fx.Message { return &moveMsg{} }
