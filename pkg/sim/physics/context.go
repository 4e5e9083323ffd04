// Package physics defines what simulated physics engines need from
// their caller. The control loop's ControlContext satisfies Context,
// engines advance on loop time.
package physics

import (
	"context"

	fx "github.com/robotalks/arm.go/pkg/framework"
)

// Context provides the simulation context.
type Context interface {
	fx.TimeSource
	Context() context.Context
}
