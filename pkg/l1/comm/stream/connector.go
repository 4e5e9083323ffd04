package stream

import (
	"context"
	"net"

	"github.com/robotalks/arm.go/pkg/l1"
	"github.com/robotalks/arm.go/pkg/l1/comm"
)

// Connector implements l1.Connector over a stream endpoint.
type Connector struct {
	Network string
	Address string
}

// Discover implements Connector. A stream endpoint is fixed, there is
// nothing to enumerate.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	return nil, l1.ErrNoDiscovery
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, c.Network, c.Address)
	if err != nil {
		return nil, err
	}
	cc := &ControllerConn{}
	cc.Init(New(conn))
	return cc, nil
}

// ControllerConn implements ControllerConn over a stream connection.
type ControllerConn struct {
	comm.ControllerConn
}
