package link

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListenOpener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	open := ListenOpener(ln)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type opened struct {
		link Link
		err  error
	}
	openCh := make(chan opened, 1)
	go func() {
		l, err := open(ctx)
		openCh <- opened{link: l, err: err}
	}()

	c1, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer c1.Close()
	var served Link
	select {
	case o := <-openCh:
		require.NoError(t, o.err)
		served = o.link
	case <-time.After(500 * time.Millisecond):
		t.Fatal("accept timeout")
	}

	_, err = c1.Write([]byte("0090"))
	require.NoError(t, err)
	buf := make([]byte, 4)
	got := 0
	for got < 4 {
		served.(net.Conn).SetReadDeadline(time.Now().Add(500 * time.Millisecond))
		n, err := served.Read(buf[got:])
		require.NoError(t, err)
		got += n
	}
	require.Equal(t, "0090", string(buf))

	// the link drops, the next open serves the next client
	served.Close()
	go func() {
		l, err := open(ctx)
		openCh <- opened{link: l, err: err}
	}()
	c2, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer c2.Close()
	select {
	case o := <-openCh:
		require.NoError(t, o.err)
		o.link.Close()
	case <-time.After(500 * time.Millisecond):
		t.Fatal("accept timeout")
	}

	// cancellation closes the listener and unblocks a pending accept
	go func() {
		l, err := open(ctx)
		openCh <- opened{link: l, err: err}
	}()
	cancel()
	select {
	case o := <-openCh:
		require.Error(t, o.err)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("cancel timeout")
	}
}

func TestStreamOpenerDial(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	acceptCh := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			acceptCh <- conn
		}
	}()

	open := StreamOpener("tcp", ln.Addr().String())
	l, err := open(context.Background())
	require.NoError(t, err)
	defer l.Close()
	_, err = l.Write([]byte("!"))
	require.NoError(t, err)

	select {
	case conn := <-acceptCh:
		defer conn.Close()
		buf := make([]byte, 1)
		conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
		_, err := conn.Read(buf)
		require.NoError(t, err)
		require.Equal(t, byte('!'), buf[0])
	case <-time.After(500 * time.Millisecond):
		t.Fatal("accept timeout")
	}
}
