package comm

import (
	"context"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/arm.go/pkg/framework"
)

// PipeRegistrar implements l1.Registrar over directly served pipes.
// Clients come and go: each served pipe posts its commands into the
// loop and controller events fan out to every live pipe. Transport
// listeners (tcp, websocket) hand accepted connections to ServePipe.
type PipeRegistrar struct {
	lock  sync.Mutex
	pipes map[*Registrar]struct{}
}

// ServePipe runs an L1 pipe over rw until the transport fails or ctx
// ends. The ctx must originate from the loop so commands reach it.
func (s *PipeRegistrar) ServePipe(ctx context.Context, rw PacketReadWriter) {
	reg := &Registrar{}
	reg.Init(rw)
	s.lock.Lock()
	if s.pipes == nil {
		s.pipes = make(map[*Registrar]struct{})
	}
	s.pipes[reg] = struct{}{}
	s.lock.Unlock()
	defer func() {
		s.lock.Lock()
		delete(s.pipes, reg)
		s.lock.Unlock()
	}()
	// the pipe blocks in ReadPacket, close it to unblock on cancel.
	err := fx.RunWithContextCloser(ctx, &reg.pipe, func() error {
		return reg.pipe.Run(ctx)
	})
	if err != nil && err != context.Canceled {
		glog.V(1).Infof("l1 pipe closed: %v", err)
	}
}

// SendEvent implements Registrar.
func (s *PipeRegistrar) SendEvent(ctx context.Context, msg fx.Message) error {
	s.lock.Lock()
	regs := make([]*Registrar, 0, len(s.pipes))
	for reg := range s.pipes {
		regs = append(regs, reg)
	}
	s.lock.Unlock()
	var errs fx.AggregatedError
	for _, reg := range regs {
		errs.Add(reg.SendEvent(ctx, msg))
	}
	return errs.Aggregate()
}
