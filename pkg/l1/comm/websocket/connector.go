package websocket

import (
	"context"
	"net/url"

	"golang.org/x/net/websocket"

	"github.com/robotalks/arm.go/pkg/l1"
	"github.com/robotalks/arm.go/pkg/l1/comm"
)

// Connector implements l1.Connector over a websocket endpoint.
type Connector struct {
	URL    string
	Origin string
}

// NewConnector creates a Connector for a ws:// or wss:// URL.
func NewConnector(wsURL string) (*Connector, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, err
	}
	return &Connector{URL: wsURL, Origin: "http://" + u.Host}, nil
}

// Discover implements Connector. A websocket endpoint is fixed, there
// is nothing to enumerate.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	return nil, l1.ErrNoDiscovery
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	ws, err := websocket.Dial(c.URL, "", c.Origin)
	if err != nil {
		return nil, err
	}
	cc := &ControllerConn{}
	cc.Init(New(ws))
	return cc, nil
}

// ControllerConn implements ControllerConn over a websocket.
type ControllerConn struct {
	comm.ControllerConn
}
