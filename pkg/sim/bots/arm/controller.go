package arm

import (
	"fmt"

	armctl "github.com/robotalks/arm.go/pkg/arm"
	fx "github.com/robotalks/arm.go/pkg/framework"
	env "github.com/robotalks/arm.go/pkg/l1/env/controller"
	"github.com/robotalks/arm.go/pkg/sim"
	"github.com/robotalks/arm.go/pkg/sim/physics/slew"
	"github.com/robotalks/arm.go/pkg/sim/visualization/see"
)

// Controller is the simulated arm: the real firmware loop driving
// simulated servos instead of hardware.
type Controller struct {
	Env    *env.Env
	Arm    *armctl.Controller
	Servos *slew.Engine

	SegmentLen float64

	sim.ObjectsChangeCaster

	changes int
}

// Segment is one link of the arm in side view.
type Segment struct {
	From sim.Pos2D
	// Degrees is the absolute direction of the link.
	Degrees float64
	Len     float64
}

// NewController creates the controller.
func NewController(e *env.Env) *Controller {
	return &Controller{
		Env:     e,
		Arm:     armctl.NewController(e),
		changes: 1, // send initial object change.
	}
}

// Name implements Named.
func (c *Controller) Name() string {
	return c.Env.Config.Info.Ref.Name()
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(l *fx.Loop) {
	l.Add(c.Servos)
	l.Add(c.Arm)
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(c.NotifyChanges))
}

// OutlineRect implements Rectangular. The outline is the reach
// envelope of the fully extended arm.
func (c *Controller) OutlineRect() sim.Rect {
	reach := c.SegmentLen * float64(c.Arm.Rig.Channels())
	return sim.Rect{
		Pos2D:  sim.Pos2D{X: -reach, Y: -reach},
		Size2D: sim.Size2D{CX: 2 * reach, CY: 2 * reach},
	}
}

// Position2D implements Positionable2D. The base is fixed at the
// origin.
func (c *Controller) Position2D() sim.Pose2D {
	return sim.Pose2D{}
}

// Segments computes the side-view pose of every link by chaining
// joint bends from the base up. 90 degrees is a straight joint.
func (c *Controller) Segments() []Segment {
	degrees := c.Servos.Degrees()
	segs := make([]Segment, len(degrees))
	pos := sim.Pos2D{}
	dir := sim.AngleFromDegrees(90)
	for i, d := range degrees {
		dir = dir.AddDegrees(d - 90)
		segs[i] = Segment{From: pos, Degrees: dir.Degrees(), Len: c.SegmentLen}
		pos = pos.Add(dir.Project(c.SegmentLen))
	}
	return segs
}

// NotifyChanges notifies object changes.
func (c *Controller) NotifyChanges(cc fx.ControlContext) error {
	if c.Servos.TakeChanged() {
		c.changes = 1
	}
	changes := c.changes
	c.changes = 0
	if changes > 0 {
		c.ObjectsChanged(cc, c)
	}
	return nil
}

// MapObject maps the simulated arm into see objects: the reach
// envelope, one object per link and a grip marker at the tip.
func MapObject(vo see.VisibleObject) []see.Object {
	c, ok := vo.(*Controller)
	if !ok {
		return nil
	}
	segs := c.Segments()
	id := see.ObjectID(c.Name())
	objs := make([]see.Object, 0, len(segs)+2)
	objs = append(objs, see.ObjectFrom("arm", c))
	tip := sim.Pos2D{}
	for i, seg := range segs {
		objs = append(objs, see.NewObject("segment", fmt.Sprintf("%s.seg%d", id, i)).
			At(seg.From.X, seg.From.Y).
			Rotate(seg.Degrees).
			With("len", seg.Len))
		tip = seg.From.Add(sim.AngleFromDegrees(seg.Degrees).Project(seg.Len))
	}
	objs = append(objs, see.NewObject("grip", id+".grip").
		At(tip.X, tip.Y).
		Radius(c.SegmentLen/6).
		Style("grip"))
	return objs
}
