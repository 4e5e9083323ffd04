// Package see streams a 2D view of the simulated workspace to
// github.com/robotalks/see over stdout.
package see

import (
	"encoding/json"
	"fmt"

	fx "github.com/robotalks/arm.go/pkg/framework"
	"github.com/robotalks/arm.go/pkg/sim"
)

// Adapter collects object changes during an iteration and flushes
// them to the viewer afterwards.
type Adapter struct {
	Config *Config
	Mapper ObjectMapper

	initial    bool
	updated    map[string]sim.Object
	removedIDs map[string]bool
}

// NewAdapter creates the adapter.
func NewAdapter(config *Config) *Adapter {
	return &Adapter{
		Config:  config,
		initial: true,
	}
}

// Subscribe is a helper to subscribe object changes.
func (a *Adapter) Subscribe(sub sim.ObjectsChangeSubscriber) *Adapter {
	sub.SubscribeObjectsChange(a)
	return a
}

// ObjectsChanged implements ObjectsChangeListener.
func (a *Adapter) ObjectsChanged(cc fx.ControlContext, objs ...sim.Object) {
	if a.updated == nil {
		a.updated = make(map[string]sim.Object)
	}
	for _, obj := range objs {
		a.updated[obj.Name()] = obj
		delete(a.removedIDs, obj.Name())
	}
}

// ObjectsRemoved implements ObjectsChangeListener.
func (a *Adapter) ObjectsRemoved(cc fx.ControlContext, objs ...sim.Object) {
	if a.removedIDs == nil {
		a.removedIDs = make(map[string]bool)
	}
	for _, obj := range objs {
		a.removedIDs[obj.Name()] = true
		delete(a.updated, obj.Name())
	}
}

// AddToLoop implements LoopAdder.
func (a *Adapter) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(a.Flush))
}

// Flush is a controller to report collected changes to the viewer.
func (a *Adapter) Flush(cc fx.ControlContext) error {
	var msgs []Message
	if a.initial {
		msgs = a.resetMessages()
		a.initial = false
		a.removedIDs = nil
	}

	for _, obj := range a.updated {
		vo, ok := obj.(VisibleObject)
		if !ok {
			continue
		}
		for _, mapped := range a.Mapper.MapObject(vo) {
			if mapped != nil {
				msgs = append(msgs, Message{Action: ActionObject, Object: mapped})
			}
		}
	}

	for id := range a.removedIDs {
		msgs = append(msgs, Message{Action: ActionRemove, RemoveID: id})
	}

	a.updated, a.removedIDs = nil, nil
	if len(msgs) > 0 {
		encoded, _ := json.Marshal(msgs)
		fmt.Println(string(encoded) + "\n")
	}
	return nil
}

// resetMessages clears the viewer and pins the workspace corners so
// the view scales to the configured area.
func (a *Adapter) resetMessages() []Message {
	w, h := a.Config.W/2, a.Config.H/2
	corners := []struct {
		loc  string
		x, y float64
	}{
		{"lt", -w, -h},
		{"lb", -w, h},
		{"rt", w, -h},
		{"rb", w, h},
	}
	msgs := make([]Message, 0, len(corners)+1)
	msgs = append(msgs, Message{Action: ActionReset})
	for _, c := range corners {
		msgs = append(msgs, Message{
			Action: ActionObject,
			Object: NewObject("corner", "corner-"+c.loc).With("loc", c.loc).At(c.x, c.y).Radius(1),
		})
	}
	return msgs
}
