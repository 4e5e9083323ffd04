package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"

	fx "github.com/robotalks/arm.go/pkg/framework"
	"github.com/robotalks/arm.go/pkg/l1"
	env "github.com/robotalks/arm.go/pkg/l1/env/controller"
	armbot "github.com/robotalks/arm.go/pkg/sim/bots/arm"
	"github.com/robotalks/arm.go/pkg/sim/visualization/see"
)

func init() {
	env.SetControllerType("sim-arm", l1.ControllerMeta{Description: "Simulation: servo arm"})
	env.SetupFlags()
	see.SetupFlags()
	armbot.SetupFlags()
}

func main() {
	flag.Parse()

	env := env.NewConfig().MustNewEnv()
	bot, err := armbot.NewConfig().NewController(env)
	if err != nil {
		log.Fatalln(err)
	}
	vis := see.NewConfig().NewAdapter()
	vis.Mapper = see.MapObjectFunc(armbot.MapObject)
	vis.Subscribe(bot)

	fx.NewLoop().
		Add(env, bot, vis).
		RunOrFail()
}
