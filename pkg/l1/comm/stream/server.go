package stream

import (
	"context"
	"net"

	"github.com/golang/glog"

	fx "github.com/robotalks/arm.go/pkg/framework"
	"github.com/robotalks/arm.go/pkg/l1/comm"
)

// Server accepts stream connections and serves an L1 pipe over each.
type Server struct {
	Network string
	Address string
	Pipes   *comm.PipeRegistrar
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen(s.Network, s.Address)
	if err != nil {
		return err
	}
	glog.Infof("l1 listening on %s %s", s.Network, ln.Addr())
	return fx.RunWithContextCloser(ctx, ln, func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return err
			}
			glog.V(1).Infof("l1 client connected: %s", conn.RemoteAddr())
			go s.Pipes.ServePipe(ctx, New(conn))
		}
	})
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(s)
}
