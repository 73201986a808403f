package controller

import (
	"octofit/internal/tui/design"
	"octofit/internal/tui/model"
	"octofit/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the resource browser.
// Extra options are appended after the alternate screen option.
func NewProgram(cfg model.TUIConfig, logChannel <-chan logging.LogEntry, opts ...tea.ProgramOption) (*tea.Program, *AppModel, error) {
	design.Initialize(cfg.ColorMode)

	m, err := model.InitializeModel(cfg, logChannel)
	if err != nil {
		return nil, nil, err
	}

	app := NewAppModel(m)
	p := tea.NewProgram(app, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	return p, app, nil
}
