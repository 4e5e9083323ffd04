package link

import (
	"context"
	"net"
	"sync"

	"github.com/golang/glog"
)

// DialStream connects a plain stream carrier (tcp or unix).
func DialStream(network, addr string) (Link, error) {
	conn, err := net.Dial(network, addr)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("stream link connected to %s", conn.RemoteAddr())
	return conn, nil
}

// StreamOpener dials network/addr on every open.
func StreamOpener(network, addr string) Opener {
	return func(context.Context) (Link, error) {
		return DialStream(network, addr)
	}
}

// ListenOpener opens links by accepting the next client from ln.
// There is no client arbitration: one client is served at a time and
// a new one is only accepted once the current link is dropped. The
// listener closes with the context of the first open, unblocking a
// pending accept on shutdown.
func ListenOpener(ln net.Listener) Opener {
	var watchOnce sync.Once
	return func(ctx context.Context) (Link, error) {
		watchOnce.Do(func() {
			go func() {
				<-ctx.Done()
				ln.Close()
			}()
		})
		conn, err := ln.Accept()
		if err != nil {
			return nil, err
		}
		glog.V(1).Infof("stream link accepted from %s", conn.RemoteAddr())
		return conn, nil
	}
}

// AcceptOpener listens on network/address and opens links by
// accepting clients.
func AcceptOpener(network, address string) (Opener, error) {
	ln, err := net.Listen(network, address)
	if err != nil {
		return nil, err
	}
	glog.Infof("listening on %s", ln.Addr())
	return ListenOpener(ln), nil
}
