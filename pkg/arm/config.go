package arm

import (
	"flag"
	"fmt"
	"strings"

	"github.com/robotalks/arm.go/pkg/l0/link"
	env "github.com/robotalks/arm.go/pkg/l1/env/controller"
	"github.com/robotalks/arm.go/pkg/servo"
	"github.com/robotalks/arm.go/pkg/servo/maestro"
)

// Config defines the configurations for the controller.
type Config struct {
	Channels    string
	HomeDegrees int

	// LinkDevice is the serial device of the command link,
	// empty for auto detection.
	LinkDevice string
	// Listen accepts the command stream over TCP instead of a
	// serial link, e.g. ":7008".
	Listen string

	ServoDevice string
	ServoBaud   int

	// LED names a sysfs LED used as the liveness indicator.
	LED string
}

var defaultConfig = Config{
	Channels:    "base,shoulder,elbow,grip",
	HomeDegrees: 90,
	ServoBaud:   maestro.DefaultBaud,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Channels, "channels", defaultConfig.Channels, "Comma-separated servo channel names.")
	flag.IntVar(&defaultConfig.HomeDegrees, "home-degrees", defaultConfig.HomeDegrees, "Home position in degrees.")
	flag.StringVar(&defaultConfig.LinkDevice, "link-device", defaultConfig.LinkDevice, "Serial device of the command link, empty for auto detection.")
	flag.StringVar(&defaultConfig.Listen, "listen", defaultConfig.Listen, "Address (host:port) accepting the command stream over TCP instead of a serial link.")
	flag.StringVar(&defaultConfig.ServoDevice, "servo-device", defaultConfig.ServoDevice, "Serial device of the servo controller.")
	flag.IntVar(&defaultConfig.ServoBaud, "servo-baud", defaultConfig.ServoBaud, "Baud rate of the servo controller.")
	flag.StringVar(&defaultConfig.LED, "led", defaultConfig.LED, "Name of the sysfs LED used as the liveness indicator.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
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

// NewController creates a controller using the config.
func (c *Config) NewController(e *env.Env) (*Controller, error) {
	ctl := NewController(e)
	ctl.HomeDegrees = c.HomeDegrees
	if c.ServoDevice == "" {
		return nil, fmt.Errorf("servo device must be specified")
	}
	drv, err := maestro.Open(c.ServoDevice, c.ServoBaud)
	if err != nil {
		return nil, fmt.Errorf("open servo controller error: %v", err)
	}
	if ctl.Rig, err = servo.NewRig(drv, c.ChannelNames()...); err != nil {
		return nil, err
	}
	opener, err := c.linkOpener()
	if err != nil {
		return nil, err
	}
	ctl.Link, ctl.LinkPolls = link.NewWatcher(opener), true
	if c.LED != "" {
		ctl.Indicator = &SysLED{Name: c.LED}
	}
	return ctl, nil
}

func (c *Config) linkOpener() (link.Opener, error) {
	if c.Listen != "" {
		return link.AcceptOpener("tcp", c.Listen)
	}
	return link.SerialOpener(c.LinkDevice, nil), nil
}
