package app

import (
	"octofit/internal/config"
	"octofit/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// Command line overrides
	APIURL      string
	ConfigPath  string
	MetricsAddr string
	Route       string

	// Debug settings
	Debug bool

	// Loaded configuration, set by NewApplication
	OctofitConfig *config.OctofitConfig
}

// NewConfig creates a new application configuration
func NewConfig(apiURL, configPath string, debug bool) *Config {
	return &Config{
		APIURL:     apiURL,
		ConfigPath: configPath,
		Debug:      debug,
	}
}

// LogLevel returns the level selected by the debug flag.
func (c *Config) LogLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	return logging.LevelInfo
}

// metricsAddr prefers the flag over the configured address.
func (c *Config) metricsAddr() string {
	if c.MetricsAddr != "" {
		return c.MetricsAddr
	}
	if c.OctofitConfig != nil {
		return c.OctofitConfig.Metrics.Addr
	}
	return ""
}

// initialRoute prefers the flag over the configured route.
func (c *Config) initialRoute() string {
	if c.Route != "" {
		return c.Route
	}
	if c.OctofitConfig != nil {
		return c.OctofitConfig.UI.InitialRoute
	}
	return ""
}
