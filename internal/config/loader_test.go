package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content OctofitConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// isolatePaths points the user and project config lookups at tempDir.
func isolatePaths(t *testing.T, tempDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})
	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolatePaths(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestLoadConfig_UserThenProjectOverride(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), configFileName, OctofitConfig{
		API: APIConfig{BaseURL: "http://user:8000", RateLimit: 2},
		UI:  UIConfig{ColorMode: ColorModeDark},
	})
	createTempConfigFile(t, filepath.Join(tempDir, projectConfigDir), configFileName, OctofitConfig{
		API: APIConfig{BaseURL: "http://project:8000"},
		UI:  UIConfig{InitialRoute: "teams"},
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://project:8000", loaded.API.BaseURL, "project wins over user")
	assert.Equal(t, 2.0, loaded.API.RateLimit, "user value survives when project leaves it unset")
	assert.Equal(t, ColorModeDark, loaded.UI.ColorMode)
	assert.Equal(t, "teams", loaded.UI.InitialRoute)
}

func TestLoadConfigWithFile_ExplicitFileWins(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, projectConfigDir), configFileName, OctofitConfig{
		API: APIConfig{BaseURL: "http://project:8000"},
	})
	explicit := filepath.Join(tempDir, "explicit.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("api:\n  baseUrl: http://explicit:8000\n  requestTimeout: 5s\nmetrics:\n  addr: \":9090\"\n"), 0644))

	loaded, err := LoadConfigWithFile(explicit)
	require.NoError(t, err)
	assert.Equal(t, "http://explicit:8000", loaded.API.BaseURL)
	assert.Equal(t, 5*time.Second, loaded.API.RequestTimeout)
	assert.Equal(t, ":9090", loaded.Metrics.Addr)
}

func TestLoadConfigWithFile_MissingExplicitFile(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	_, err := LoadConfigWithFile(filepath.Join(tempDir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	dir := filepath.Join(tempDir, projectConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("api: [unclosed"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, projectConfigDir), configFileName, OctofitConfig{
		UI: UIConfig{ColorMode: "neon"},
	})

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colorMode")
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/octo", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/octo", ".config", "octofit"), dir)
}
