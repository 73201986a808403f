package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/octofit"
	projectConfigDir = ".octofit"
	configFileName   = "config.yaml"
)

// LoadConfig loads the octofit configuration by layering default, user, and project settings.
func LoadConfig() (OctofitConfig, error) {
	return LoadConfigWithFile("")
}

// LoadConfigWithFile layers an explicit file (e.g. from --config) on top of
// LoadConfig's result. Unlike the user and project files, an explicit file
// must exist.
func LoadConfigWithFile(explicitPath string) (OctofitConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = mergeFileIfPresent(config, userConfigPath); err != nil {
		return OctofitConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = mergeFileIfPresent(config, projectConfigPath); err != nil {
		return OctofitConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if explicitPath != "" {
		explicit, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return OctofitConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, explicit)
	}

	if err := config.Validate(); err != nil {
		return OctofitConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func mergeFileIfPresent(base OctofitConfig, path string) (OctofitConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads an OctofitConfig from a YAML file.
func loadConfigFromFile(filePath string) (OctofitConfig, error) {
	var config OctofitConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return OctofitConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return OctofitConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// overlay leave base untouched.
func mergeConfigs(base, overlay OctofitConfig) OctofitConfig {
	merged := base

	if overlay.API.BaseURL != "" {
		merged.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.CodespaceName != "" {
		merged.API.CodespaceName = overlay.API.CodespaceName
	}
	if overlay.API.RequestTimeout != 0 {
		merged.API.RequestTimeout = overlay.API.RequestTimeout
	}
	if overlay.API.RateLimit != 0 {
		merged.API.RateLimit = overlay.API.RateLimit
	}

	if overlay.UI.InitialRoute != "" {
		merged.UI.InitialRoute = overlay.UI.InitialRoute
	}
	if overlay.UI.ColorMode != "" {
		merged.UI.ColorMode = overlay.UI.ColorMode
	}

	if overlay.Metrics.Addr != "" {
		merged.Metrics.Addr = overlay.Metrics.Addr
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
