package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultBaseURL is used when neither configuration nor a codespace name is available.
	DefaultBaseURL = "http://localhost:8000"

	// apiPort is the port the API listens on inside a codespace.
	apiPort = 8000

	ColorModeAuto  = "auto"
	ColorModeDark  = "dark"
	ColorModeLight = "light"
)

// codespaceEnvVars are consulted in order for the codespace name.
var codespaceEnvVars = []string{"CODESPACE_NAME", "REACT_APP_CODESPACE_NAME"}

// For mocking in tests
var osGetenv = os.Getenv

// GetDefaultConfig returns the built-in configuration.
// The base URL is left empty so that the codespace rule can apply.
func GetDefaultConfig() OctofitConfig {
	return OctofitConfig{
		API: APIConfig{
			RequestTimeout: 0,
			RateLimit:      0,
		},
		UI: UIConfig{
			InitialRoute: "/",
			ColorMode:    ColorModeAuto,
		},
	}
}

// CodespaceURL builds the forwarded-port URL of a GitHub codespace.
func CodespaceURL(name string) string {
	return fmt.Sprintf("https://%s-%d.app.github.dev", name, apiPort)
}

// ResolveBaseURL picks the API base URL. Precedence: flagValue, the
// configured baseUrl, the configured or environment codespace name, and
// finally DefaultBaseURL.
func ResolveBaseURL(cfg OctofitConfig, flagValue string) (string, BaseURLSource) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return strings.TrimRight(v, "/"), SourceFlag
	}
	if v := strings.TrimSpace(cfg.API.BaseURL); v != "" {
		return strings.TrimRight(v, "/"), SourceConfig
	}
	if name := codespaceName(cfg); name != "" {
		return CodespaceURL(name), SourceCodespace
	}
	return DefaultBaseURL, SourceDefault
}

func codespaceName(cfg OctofitConfig) string {
	if v := strings.TrimSpace(cfg.API.CodespaceName); v != "" {
		return v
	}
	for _, key := range codespaceEnvVars {
		if v := strings.TrimSpace(osGetenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// Validate reports configuration values that cannot be used.
func (c OctofitConfig) Validate() error {
	if c.API.RequestTimeout < 0 {
		return fmt.Errorf("api.requestTimeout must not be negative, got %s", c.API.RequestTimeout)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("api.rateLimit must not be negative, got %v", c.API.RateLimit)
	}
	switch c.UI.ColorMode {
	case "", ColorModeAuto, ColorModeDark, ColorModeLight:
	default:
		return fmt.Errorf("ui.colorMode must be one of auto, dark, light; got %q", c.UI.ColorMode)
	}
	return nil
}
