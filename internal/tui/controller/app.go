package controller

import (
	"octofit/internal/tui/model"
	"octofit/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel wraps Model and provides the controller logic
type AppModel struct {
	Model *model.Model
}

// NewAppModel creates a new AppModel
func NewAppModel(m *model.Model) *AppModel {
	return &AppModel{Model: m}
}

// Init implements tea.Model
func (a *AppModel) Init() tea.Cmd {
	return a.Model.Init()
}

// Update implements tea.Model
func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := Update(msg, a.Model)
	a.Model = updated
	return a, cmd
}

// View implements tea.Model
func (a *AppModel) View() string {
	return view.Render(a.Model)
}
