// Package all imports all command providers.
package all

import (
	_ "github.com/robotalks/arm.go/pkg/cli/cmds/arm"
	_ "github.com/robotalks/arm.go/pkg/cli/cmds/teleop"
)
