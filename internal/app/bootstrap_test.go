package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"octofit/internal/config"
	"octofit/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("http://flag.test", "/tmp/x.yaml", true)
	assert.Equal(t, "http://flag.test", cfg.APIURL)
	assert.Equal(t, "/tmp/x.yaml", cfg.ConfigPath)
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel())
	assert.Equal(t, logging.LevelInfo, NewConfig("", "", false).LogLevel())
}

func TestNewApplication_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
api:
  baseUrl: http://example.test:9000/
  requestTimeout: 2s
ui:
  initialRoute: /teams
  colorMode: dark
`)
	cfg := NewConfig("", path, false)
	application, err := NewApplication(cfg, io.Discard)
	require.NoError(t, err)
	defer application.Close()

	assert.Equal(t, "http://example.test:9000", application.Client().BaseURL())
	assert.Equal(t, config.SourceConfig, application.Services().BaseURLSource)
	assert.Nil(t, application.Services().Metrics)

	tc := tuiConfig(cfg, application.Services())
	assert.Equal(t, "/teams", tc.InitialRoute)
	assert.Equal(t, "dark", tc.ColorMode)
}

func TestNewApplication_FlagOverridesConfig(t *testing.T) {
	path := writeConfig(t, "api:\n  baseUrl: http://example.test\n")
	cfg := NewConfig("http://flag.test/", path, false)
	cfg.Route = "users"

	application, err := NewApplication(cfg, io.Discard)
	require.NoError(t, err)
	defer application.Close()

	assert.Equal(t, "http://flag.test", application.Client().BaseURL())
	assert.Equal(t, config.SourceFlag, application.Services().BaseURLSource)
	assert.Equal(t, "users", tuiConfig(cfg, application.Services()).InitialRoute)
}

func TestNewApplication_Errors(t *testing.T) {
	_, err := NewApplication(NewConfig("", filepath.Join(t.TempDir(), "missing.yaml"), false), io.Discard)
	assert.Error(t, err)

	path := writeConfig(t, "ui:\n  colorMode: neon\n")
	_, err = NewApplication(NewConfig("", path, false), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colorMode")
}

func TestInitializeServices_Metrics(t *testing.T) {
	path := writeConfig(t, "api:\n  baseUrl: http://example.test\nmetrics:\n  addr: 127.0.0.1:0\n")
	cfg := NewConfig("", path, false)
	application, err := NewApplication(cfg, io.Discard)
	require.NoError(t, err)

	require.NotNil(t, application.Services().Metrics)
	application.Close()
	application.Close()
}

func TestMetricsAddrPrefersFlag(t *testing.T) {
	cfg := &Config{MetricsAddr: ":9100", OctofitConfig: &config.OctofitConfig{Metrics: config.MetricsConfig{Addr: ":9090"}}}
	assert.Equal(t, ":9100", cfg.metricsAddr())

	cfg.MetricsAddr = ""
	assert.Equal(t, ":9090", cfg.metricsAddr())

	assert.Empty(t, (&Config{}).metricsAddr())
}
