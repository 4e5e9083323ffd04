package see

import "flag"

// Config defines the visualized workspace area.
type Config struct {
	W float64
	H float64
}

// A 4-joint arm with default segments reaches a bit under 500mm,
// so the default area leaves a margin around it.
var defaultConfig = Config{
	W: 1200,
	H: 1200,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.W, "see-w", defaultConfig.W, "Width (mm) of the visualized workspace")
	flag.Float64Var(&defaultConfig.H, "see-h", defaultConfig.H, "Height (mm) of the visualized workspace")
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

// NewAdapter creates the adapter from config.
func (c *Config) NewAdapter() *Adapter {
	return NewAdapter(c)
}
