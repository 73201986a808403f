package view

import (
	"fmt"

	"octofit/internal/tui/components"
	"octofit/internal/tui/design"
	"octofit/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Brand is shown at the left of the navigation bar.
const Brand = "OctoFit Tracker"

// Render renders the whole screen for the current mode.
func Render(m *model.Model) string {
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
	}
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render("Bye.")
	case model.ModeDashboard, model.ModeFilterInput:
		return renderDashboard(m)
	case model.ModeDetailsOverlay:
		return renderDetailsOverlay(m)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return design.TextErrorStyle.Render(fmt.Sprintf("Unhandled application mode: %s", m.CurrentAppMode))
	}
}

func renderHeader(m *model.Model) string {
	labels := make([]string, len(m.Tabs))
	for i, def := range m.Tabs {
		labels[i] = fmt.Sprintf("%d %s", i+1, def.Label)
	}
	h := components.NewHeader(Brand).
		WithTabs(labels, m.ActiveTab).
		WithWidth(m.Width)
	if m.Viewer != nil {
		h = h.WithRightContent(design.TextSecondaryStyle.Render(m.Viewer.Def.Route))
	}
	if m.Viewer != nil && m.Viewer.Loading {
		h = h.WithSpinner(m.Spinner.View())
	}
	return h.Render()
}

func renderStatusBar(m *model.Model) string {
	left := ""
	if m.Viewer != nil {
		left = fmt.Sprintf("%s: %d/%d", m.Viewer.Def.Label, len(m.Viewer.Visible()), len(m.Viewer.Records))
		if m.Viewer.Filter != "" {
			left += fmt.Sprintf("  filter %q", m.Viewer.Filter)
		}
	}
	return components.NewStatusBar(m.Width).
		WithLeftText(left).
		WithRightText(m.Client.BaseURL()).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}

// placeOverlay centers box over the screen, keeping the status bar visible.
func placeOverlay(m *model.Model, box string) string {
	canvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(design.ColorOverlayWhitespace))
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m))
}
