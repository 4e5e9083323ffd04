package web

import "flag"

// Config defines the configuration for the web server.
type Config struct {
	// ListenAddr enables the web server when set, e.g. ":8080".
	ListenAddr string
	// StaticDir overrides the built-in page with files served
	// from disk.
	StaticDir string
}

var defaultConfig = Config{}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.ListenAddr, "web-listen", defaultConfig.ListenAddr, "Listen address of the status dashboard, empty to disable.")
	flag.StringVar(&defaultConfig.StaticDir, "web-static", defaultConfig.StaticDir, "Directory of static files overriding the built-in page.")
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
