package app

import (
	"context"
	"fmt"
	"io"

	"octofit/internal/api"
	"octofit/internal/config"
	"octofit/pkg/logging"
)

// Application is the main application structure that bootstraps and runs octofit
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration and initializes services. Log output
// goes to logOutput until the TUI takes over; stdout is left for command
// output.
func NewApplication(cfg *Config, logOutput io.Writer) (*Application, error) {
	logging.InitForCLI(cfg.LogLevel(), logOutput)

	var octoCfg config.OctofitConfig
	var err error

	if cfg.ConfigPath != "" {
		octoCfg, err = config.LoadConfigWithFile(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load octofit configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load octofit configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		octoCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load octofit configuration")
			return nil, fmt.Errorf("failed to load octofit configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.OctofitConfig = &octoCfg

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Client returns the API client shared by all modes.
func (a *Application) Client() api.Client {
	return a.services.Client
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Run starts the interactive browser and blocks until the user quits.
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}

// Close stops background services.
func (a *Application) Close() {
	a.services.Stop()
}
