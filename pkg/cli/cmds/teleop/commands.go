// Package teleop provides shell commands for teleop controllers.
package teleop

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/arm.go/pkg/cli/sh"
	"github.com/robotalks/arm.go/pkg/l1"
	"github.com/robotalks/arm.go/pkg/teleop/msgs"
)

var (
	// TeleopStatusCmd exposes TeleopStatusQuery command.
	TeleopStatusCmd = ishell.Cmd{
		Name:    "teleop.status",
		Aliases: []string{"ts"},
		Help:    "show the input device and the connected arm",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.TeleopStatusQuery{})
		}),
	}

	// TeleopConnectCmd exposes TeleopConnect command.
	TeleopConnectCmd = ishell.Cmd{
		Name:    "teleop.connect",
		Aliases: []string{"tc"},
		Help:    "TYPE ID [REGISTRY_URL]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			msg, err := connectTarget(c)
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, msg)
		}),
	}

	// TeleopDisconnectCmd detaches the teleop controller from its arm.
	TeleopDisconnectCmd = ishell.Cmd{
		Name:    "teleop.disconnect",
		Aliases: []string{"td"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			// an empty ref asks the controller to drop the arm.
			sh.DoCommand(c, &msgs.TeleopConnect{})
		}),
	}
)

// connectTarget resolves command arguments into a TeleopConnect: a full
// TYPE ID pair is taken as given, otherwise discovery runs with TYPE
// narrowing the candidates when present.
func connectTarget(c *ishell.Context) (*msgs.TeleopConnect, error) {
	var msg msgs.TeleopConnect
	if len(c.Args) >= 2 {
		msg.Type, msg.ID = c.Args[0], c.Args[1]
		if len(c.Args) > 2 {
			msg.RegistryURL = c.Args[2]
		}
		return &msg, nil
	}
	var filter func(l1.ControllerInfo) bool
	if len(c.Args) == 1 {
		filter = func(info l1.ControllerInfo) bool {
			return info.Ref.Type == c.Args[0]
		}
	}
	_, info, err := sh.ShellFrom(c).SelectController(filter)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("no arm discovered")
	}
	msg.Type, msg.ID = info.Ref.Type, info.Ref.ID
	return &msg, nil
}

func init() {
	sh.AddCmds(
		&TeleopStatusCmd,
		&TeleopConnectCmd,
		&TeleopDisconnectCmd,
	)
}
