// Package l1 defines the contract between an arm controller (L1)
// and whatever drives it (L2): registrars publish the controller
// and its events, connectors reach a controller and issue commands.
package l1

import (
	"context"
	"errors"

	fx "github.com/robotalks/arm.go/pkg/framework"
)

// ErrNoDiscovery indicates the connector has no registry to
// enumerate: it connects to a fixed endpoint.
var ErrNoDiscovery = errors.New("discovery not supported")

// Registrar publishes an arm controller. Events flow from the
// control loop to all interested L2 parties.
type Registrar interface {
	// SendEvent sends an event to L2.
	SendEvent(context.Context, fx.Message) error
}

// Command is a received command pending a reply.
type Command interface {
	Msg() fx.Message
	Done(fx.Message) error
}

// CommandMsg wraps a Command as a Message so it travels the loop.
type CommandMsg struct {
	Command Command
}

// NewMessage implements Message.
func (m *CommandMsg) NewMessage() fx.Message { return &CommandMsg{} }

// ControllerRef identifies one arm controller.
type ControllerRef struct {
	// Type is the controller type, the arm model.
	Type string
	// ID distinguishes devices of the same type.
	ID string
}

// Name formats the ref as type/id.
func (r ControllerRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates both parts of the ref are present.
func (r ControllerRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// ControllerMeta describes a controller beyond its ref.
type ControllerMeta struct {
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// ControllerInfo is what a registry knows about a controller.
type ControllerInfo struct {
	Ref  ControllerRef
	Meta ControllerMeta
}

// Connector reaches arm controllers from the L2 side.
type Connector interface {
	// Discover enumerates registered controllers.
	Discover(context.Context) ([]ControllerInfo, error)
	// Connect connects to the specified controller.
	Connect(context.Context, ControllerRef) (ControllerConn, error)
}

// ControllerConn is an established connection to a controller.
type ControllerConn interface {
	// DoCommand sends a command and resolves with its reply.
	DoCommand(fx.Message) CommandFuture
}

// Result is the outcome of a command.
type Result struct {
	Msg fx.Message
	Err error
}

// CommandFuture resolves once, with the reply or an error.
type CommandFuture interface {
	ResultChan() <-chan Result
}
