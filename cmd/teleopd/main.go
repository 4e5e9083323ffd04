package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	fx "github.com/robotalks/arm.go/pkg/framework"
	"github.com/robotalks/arm.go/pkg/l1"
	env "github.com/robotalks/arm.go/pkg/l1/env/controller"
	"github.com/robotalks/arm.go/pkg/teleop"
)

func init() {
	env.SetControllerType("teleop", l1.ControllerMeta{Description: "Teleoperation Controller"})
	env.SetupFlags()
	teleop.SetupFlags()
}

func main() {
	flag.Parse()

	env := env.NewConfig().MustNewEnv()
	ctl := teleop.NewConfig().NewController(env)
	fx.NewLoop().Add(env, ctl).RunOrFail()
}
