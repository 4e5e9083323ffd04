package arm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/arm.go/pkg/cli/sh"
	"github.com/robotalks/arm.go/pkg/l1/msgs"
)

var (
	// ArmCapsCmd exposes ArmCapsQuery command.
	ArmCapsCmd = ishell.Cmd{
		Name:    "arm.caps",
		Aliases: []string{"ac"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.ArmCapsQuery{})
		}),
	}

	// ArmMoveCmd exposes ArmMove command.
	ArmMoveCmd = ishell.Cmd{
		Name:    "arm.move",
		Aliases: []string{"am"},
		Help:    "CHANNEL DEGREES",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("CHANNEL and DEGREES required"))
				return
			}
			var msg msgs.ArmMove
			val, err := strconv.ParseUint(c.Args[0], 10, 32)
			if err != nil {
				c.Err(fmt.Errorf("Invalid CHANNEL: %v", err))
				return
			}
			msg.Channel = uint32(val)
			if val, err = strconv.ParseUint(c.Args[1], 10, 32); err != nil {
				c.Err(fmt.Errorf("Invalid DEGREES: %v", err))
				return
			}
			msg.Degrees = uint32(val)
			sh.DoCommand(c, &msg)
		}),
	}

	// ArmHomeCmd exposes ArmHome command.
	ArmHomeCmd = ishell.Cmd{
		Name:    "arm.home",
		Aliases: []string{"ah"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.ArmHome{})
		}),
	}

	// ArmStatusCmd exposes ArmStatusQuery command.
	ArmStatusCmd = ishell.Cmd{
		Name:    "arm.status",
		Aliases: []string{"as"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.ArmStatusQuery{})
		}),
	}

	// ArmFrameCmd exposes ArmFrame command: raw bytes fed into the
	// frame decoder as if received over the serial link.
	ArmFrameCmd = ishell.Cmd{
		Name:    "arm.frame",
		Aliases: []string{"af"},
		Help:    "BYTES (e.g. 0090)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("BYTES required"))
				return
			}
			sh.DoCommand(c, &msgs.ArmFrame{Data: []byte(strings.Join(c.Args, ""))})
		}),
	}

	// ArmResetCmd exposes ArmReset command.
	ArmResetCmd = ishell.Cmd{
		Name:    "arm.reset",
		Aliases: []string{"ar"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.ArmReset{})
		}),
	}
)

func init() {
	sh.AddCmds(
		&ArmCapsCmd,
		&ArmMoveCmd,
		&ArmHomeCmd,
		&ArmStatusCmd,
		&ArmFrameCmd,
		&ArmResetCmd,
	)
}
