package config

import (
	"time"
)

// OctofitConfig is the top-level configuration structure for octofit.
type OctofitConfig struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// APIConfig describes how to reach the OctoFit REST API.
type APIConfig struct {
	BaseURL        string        `yaml:"baseUrl,omitempty"`        // Explicit base URL, e.g. "http://localhost:8000"
	CodespaceName  string        `yaml:"codespaceName,omitempty"`  // Codespace hosting the API; builds the app.github.dev URL
	RequestTimeout time.Duration `yaml:"requestTimeout,omitempty"` // 0 waits until the server answers
	RateLimit      float64       `yaml:"rateLimit,omitempty"`      // Requests per second, 0 = unlimited
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	InitialRoute string `yaml:"initialRoute,omitempty"` // Route or resource name shown first
	ColorMode    string `yaml:"colorMode,omitempty"`    // "auto", "dark" or "light"
}

// MetricsConfig controls the optional Prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr,omitempty"` // e.g. ":9090"; empty disables the server
}

// BaseURLSource records which rule produced the resolved base URL.
type BaseURLSource string

const (
	SourceFlag      BaseURLSource = "flag"
	SourceConfig    BaseURLSource = "config"
	SourceCodespace BaseURLSource = "codespace"
	SourceDefault   BaseURLSource = "default"
)
