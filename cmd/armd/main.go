package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"

	"github.com/robotalks/arm.go/pkg/arm"
	fx "github.com/robotalks/arm.go/pkg/framework"
	"github.com/robotalks/arm.go/pkg/l1"
	env "github.com/robotalks/arm.go/pkg/l1/env/controller"
	"github.com/robotalks/arm.go/pkg/web"
)

func init() {
	env.SetControllerType("arm", l1.ControllerMeta{Description: "Servo Arm Controller"})
	env.SetupFlags()
	arm.SetupFlags()
	web.SetupFlags()
}

func main() {
	flag.Parse()

	env := env.NewConfig().MustNewEnv()
	ctl, err := arm.NewConfig().NewController(env)
	if err != nil {
		log.Fatalln(err)
	}
	// the web server joins the registrar mux, the loop picks it
	// up when env is added.
	if conf := web.NewConfig(); conf.ListenAddr != "" {
		conf.NewServer(env)
	}
	fx.NewLoop().Add(env, ctl).RunOrFail()
}
