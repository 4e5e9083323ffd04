package arm

import (
	"flag"
	"strings"

	env "github.com/robotalks/arm.go/pkg/l1/env/controller"
	"github.com/robotalks/arm.go/pkg/servo"
	"github.com/robotalks/arm.go/pkg/sim/physics/slew"
)

// Config defines the configuration for the simulated arm.
type Config struct {
	Channels    string
	SegmentLen  float64
	SlewSpeed   float64
	HomeDegrees int
}

// Defaults
const (
	DefaultChannels   string  = "base,shoulder,elbow,grip"
	DefaultSegmentLen float64 = 120
)

var defaultConfig = Config{
	Channels:    DefaultChannels,
	SegmentLen:  DefaultSegmentLen,
	SlewSpeed:   slew.DefaultSpeed,
	HomeDegrees: 90,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Channels, "channels", defaultConfig.Channels, "Comma-separated servo channel names.")
	flag.Float64Var(&defaultConfig.SegmentLen, "segment-len", defaultConfig.SegmentLen, "Length (mm) of each arm segment.")
	flag.Float64Var(&defaultConfig.SlewSpeed, "slew-speed", defaultConfig.SlewSpeed, "Servo slew speed (degrees/s), 0 snaps instantly.")
	flag.IntVar(&defaultConfig.HomeDegrees, "home-degrees", defaultConfig.HomeDegrees, "Home position in degrees.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// ChannelNames parses the channel names.
func (c *Config) ChannelNames() []string {
	var names []string
	for _, name := range strings.Split(c.Channels, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// NewController creates the Controller.
func (c *Config) NewController(e *env.Env) (*Controller, error) {
	ctl := NewController(e)
	ctl.SegmentLen = c.SegmentLen
	ctl.Arm.HomeDegrees = c.HomeDegrees
	ctl.Servos = slew.New(c.SlewSpeed)
	rig, err := servo.NewRig(ctl.Servos, c.ChannelNames()...)
	if err != nil {
		return nil, err
	}
	ctl.Arm.Rig = rig
	return ctl, nil
}
