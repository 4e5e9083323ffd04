package teleop

import (
	"context"
	"log"
	"time"

	fx "github.com/robotalks/arm.go/pkg/framework"
	"github.com/robotalks/arm.go/pkg/l1"
	connenv "github.com/robotalks/arm.go/pkg/l1/env/connector"
	env "github.com/robotalks/arm.go/pkg/l1/env/controller"
	l1msgs "github.com/robotalks/arm.go/pkg/l1/msgs"
	"github.com/robotalks/arm.go/pkg/teleop/device"
	"github.com/robotalks/arm.go/pkg/teleop/msgs"
)

// Controller is an L2 controller which teleoperates an arm with a
// joystick: axes position channels, button 0 homes the arm.
type Controller struct {
	Env         *env.Env
	DeviceIndex int
	Verbose     bool

	conn        *connection
	eventCh     chan device.Event
	device      device.Device
	deviceTimer <-chan time.Time

	status        msgs.TeleopStatus
	statusChanged bool
}

// NewController creates a Controller.
func NewController(e *env.Env) *Controller {
	return &Controller{
		Env:           e,
		DeviceIndex:   defaultConfig.DeviceIndex,
		Verbose:       defaultConfig.Verbose,
		statusChanged: true,
	}
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(c)
	loop.AddController(fx.PrLvControl, c)
	loop.AddController(fx.PrLvPostProc, fx.ControlFunc(c.notifyStatusChange))
}

// Run implements Runnable. It owns the input device: open or detect
// one, pump its events into the loop, reopen after a loss.
func (c *Controller) Run(ctx context.Context) error {
	defer func() {
		if c.device != nil {
			c.device.Close()
		}
	}()
	loopCtl := fx.LoopCtlFrom(ctx)
	c.deviceTimer = time.After(time.Second)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.deviceTimer:
			c.deviceTimer = nil
			dev := c.openDevice()
			if dev == nil {
				c.deviceTimer = time.After(time.Second)
				break
			}
			log.Printf("Input device %d %q ready", dev.Index(), dev.Name())
			c.device, c.eventCh = dev, make(chan device.Event, 1)
			go c.pumpEvents()
			loopCtl.PostMessage(&statusMsg{
				device: &msgs.TeleopDevice{
					Index: uint32(dev.Index()),
					Name:  dev.Name(),
				},
			})
		case ev, ok := <-c.eventCh:
			if ok {
				loopCtl.PostMessage(&eventMsg{event: ev})
			} else {
				loopCtl.PostMessage(&eventMsg{lost: true})
				if c.device != nil {
					c.device.Close()
				}
				c.device, c.eventCh = nil, nil
				c.deviceTimer = time.After(time.Second)
				loopCtl.PostMessage(&statusMsg{
					device: &msgs.TeleopDevice{Index: 0xffffffff},
				})
			}
			loopCtl.TriggerNext()
		}
	}
}

func (c *Controller) openDevice() device.Device {
	if c.DeviceIndex >= 0 {
		dev, err := device.Open(c.DeviceIndex)
		if err != nil {
			log.Printf("Open input device %d error: %v", c.DeviceIndex, err)
			return nil
		}
		return dev
	}
	dev, err := device.DetectAndOpen(0)
	if err != nil {
		log.Printf("Detect input device error: %v", err)
		return nil
	}
	if dev == nil {
		log.Println("No input device present.")
	}
	return dev
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		switch msg := mctx.CurrentMessage().(type) {
		case *l1.CommandMsg:
			switch m := msg.Command.Msg().(type) {
			case *msgs.TeleopStatusQuery:
				mctx.MessageTaken()
				msg.Command.Done(&msgs.TeleopStatusReply{Status: &c.status})
			case *msgs.TeleopConnect:
				mctx.MessageTaken()
				msg.Command.Done(c.connect(cc, m))
			}
		case *eventMsg:
			mctx.MessageTaken()
			if conn := c.conn; conn != nil {
				conn.loop.PostMessage(msg)
				conn.loop.TriggerNext()
			} else {
				log.Println("Arm not connected.")
			}
		case *statusMsg:
			if msg.device != nil {
				if msg.device.Index == 0xffffffff {
					c.status.Device = nil
				} else {
					c.status.Device = msg.device
				}
				c.statusChanged = true
			}
			if msg.conn != nil {
				if msg.conn.Type == "" {
					c.status.Connection = nil
				} else {
					c.status.Connection = msg.conn
				}
				c.statusChanged = true
			}
		}
	}))
	return nil
}

func (c *Controller) notifyStatusChange(cc fx.ControlContext) error {
	changed := c.statusChanged
	c.statusChanged = false
	if changed {
		return c.Env.Registrar.SendEvent(cc.Context(), &c.status)
	}
	return nil
}

func (c *Controller) connect(cc fx.ControlContext, msg *msgs.TeleopConnect) fx.Message {
	if c.conn != nil {
		c.conn.close()
		c.conn = nil
		cc.PostMessage(&statusMsg{conn: &msgs.TeleopConnect{}})
	}
	if msg.Type == "" && msg.ID == "" {
		// treat as disconnect.
		return l1msgs.NewCommandOK()
	}
	conf := connenv.NewConfig()
	if conf.RegistryURL = msg.RegistryURL; conf.RegistryURL == "" {
		conf.RegistryURL = c.Env.RegistryURLs[0]
	}
	if conf.Ref.Type, conf.Ref.ID = msg.Type, msg.ID; !conf.Ref.IsValid() {
		return l1msgs.NewCommandErrFromMsg("controller ref invalid")
	}
	connector, err := conf.NewConnector()
	if err != nil {
		return l1msgs.NewCommandErr(err)
	}
	if c.conn, err = newConnection(cc, connector, conf.Ref); err != nil {
		return l1msgs.NewCommandErr(err)
	}
	go c.conn.run()
	cc.PostMessage(&statusMsg{conn: &msgs.TeleopConnect{
		RegistryURL: conf.RegistryURL,
		Type:        conf.Ref.Type,
		ID:          conf.Ref.ID,
	}})
	return l1msgs.NewCommandOK()
}

func (c *Controller) pumpEvents() {
	dev, ch := c.device, c.eventCh
	defer close(ch)
	for {
		ev, err := dev.ReadEvent()
		if err != nil {
			log.Printf("Input device read error: %v", err)
			return
		}
		if c.Verbose {
			var prefix string
			if ev.Init {
				prefix = "[INIT] "
			}
			switch ev.Kind {
			case device.Axis:
				log.Printf(prefix+"Axis %d: %d", ev.Index, ev.Value)
			case device.Button:
				log.Printf(prefix+"Button %d: %v", ev.Index, ev.Pressed())
			}
		}
		ch <- ev
	}
}

type statusMsg struct {
	device *msgs.TeleopDevice
	conn   *msgs.TeleopConnect
}

func (m *statusMsg) NewMessage() fx.Message { return &statusMsg{} }

type eventMsg struct {
	event device.Event
	lost  bool
}

func (m *eventMsg) NewMessage() fx.Message { return &eventMsg{} }

type capsMsg struct {
	caps *l1msgs.ArmCaps
}

func (m *capsMsg) NewMessage() fx.Message { return &capsMsg{} }

type connection struct {
	ctx    context.Context
	cancel func()
	conn   l1.ControllerConn
	loop   *fx.Loop
	caps   *l1msgs.ArmCaps
}

func newConnection(cc fx.ControlContext, connector l1.Connector, ref l1.ControllerRef) (c *connection, err error) {
	c = &connection{}
	c.ctx, c.cancel = context.WithCancel(cc.Context())
	if c.conn, err = connector.Connect(c.ctx, ref); err != nil {
		return
	}
	c.loop = fx.NewLoop()
	if adder, ok := c.conn.(fx.LoopAdder); ok {
		c.loop.Add(adder)
	}
	c.loop.AddController(fx.PrLvControl, c)
	return
}

func (c *connection) run() {
	c.loop.Run(c.ctx)
}

func (c *connection) close() {
	c.cancel()
}

func (c *connection) handleEvent(ev device.Event) {
	if c.caps == nil {
		log.Println("ArmCaps not available.")
		return
	}
	if ev.Init {
		// initial device state must not move the arm.
		return
	}
	switch ev.Kind {
	case device.Axis:
		if uint32(ev.Index) < c.caps.Channels {
			c.move(ev.Index, ev.Value)
		}
	case device.Button:
		if ev.Pressed() && ev.Index == 0 {
			c.conn.DoCommand(&l1msgs.ArmHome{})
		}
	}
}

func (c *connection) move(channel, val int) {
	var msg l1msgs.ArmMove
	msg.Channel = uint32(channel)
	msg.Degrees = uint32(AxisDegrees(val, c.caps.DegreesMax))
	c.conn.DoCommand(&msg)
}

// AxisDegrees maps a raw axis value (-32767..32767) onto the angle
// range 0..degreesMax, clamping out-of-range values.
func AxisDegrees(val int, degreesMax uint32) int {
	deg := (val + 32767) * int(degreesMax) / 65534
	if deg < 0 {
		return 0
	}
	if m := int(degreesMax); deg > m {
		return m
	}
	return deg
}

// Run implements Runnable to query ArmCaps from the controller.
func (c *connection) Run(ctx context.Context) error {
	for {
		res := <-c.conn.DoCommand(&l1msgs.ArmCapsQuery{}).ResultChan()
		if res.Err != nil {
			log.Printf("ArmCapsQuery error: %v", res.Err)
		} else if caps, ok := res.Msg.(*l1msgs.ArmCaps); ok {
			loopCtl := fx.LoopCtlFrom(ctx)
			loopCtl.PostMessage(&capsMsg{caps: caps})
			loopCtl.TriggerNext()
			break
		} else {
			log.Println("ArmCapsQuery got unknown response")
		}
		<-time.After(time.Second)
	}
	return nil
}

// Control implements Controller.
func (c *connection) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		switch msg := mctx.CurrentMessage().(type) {
		case *eventMsg:
			mctx.MessageTaken()
			if msg.lost {
				// the arm holds the last commanded position.
				log.Println("Input device lost, arm holds position.")
			} else {
				c.handleEvent(msg.event)
			}
		case *capsMsg:
			mctx.MessageTaken()
			log.Printf("ArmCaps available: %s", msg.caps.String())
			c.caps = msg.caps
		}
	}))
	return nil
}
