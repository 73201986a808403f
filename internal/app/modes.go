package app

import (
	"context"
	"fmt"

	"octofit/internal/tui/controller"
	"octofit/internal/tui/model"
	"octofit/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(config.LogLevel())
	defer logging.CloseTUIChannel()
	logging.Info("TUI", "Browsing %s (source: %s)", services.Client.BaseURL(), services.BaseURLSource)

	p, app, err := controller.NewProgram(tuiConfig(config, services), logChan, tea.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to create TUI program: %w", err)
	}
	defer app.Model.Shutdown()

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI program: %w", err)
	}
	return nil
}

func tuiConfig(config *Config, services *Services) model.TUIConfig {
	colorMode := ""
	if config.OctofitConfig != nil {
		colorMode = config.OctofitConfig.UI.ColorMode
	}
	return model.TUIConfig{
		Client:       services.Client,
		InitialRoute: config.initialRoute(),
		DebugMode:    config.Debug,
		ColorMode:    colorMode,
	}
}
