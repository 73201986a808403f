package view

import (
	"octofit/internal/tui/design"
	"octofit/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderDashboard(m *model.Model) string {
	parts := []string{
		renderHeader(m),
		renderTitleRow(m),
		renderFilter(m),
	}
	if banner := renderBanner(m); banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, renderBody(m))

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	footer := lipgloss.JoinVertical(lipgloss.Left,
		design.DimStyle.Render(m.Help.View(m.Keys)),
		renderStatusBar(m),
	)

	gap := m.Height - lipgloss.Height(body) - lipgloss.Height(footer)
	if gap > 0 {
		body = lipgloss.NewStyle().Height(lipgloss.Height(body) + gap).Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// renderTitleRow shows the view title, the endpoint URL and the refresh action.
func renderTitleRow(m *model.Model) string {
	v := m.Viewer
	button := design.ButtonStyle.Render("r " + v.RefreshLabel())
	if v.Loading {
		button = design.ButtonDisabledStyle.Render(v.RefreshLabel())
	}
	title := lipgloss.JoinHorizontal(lipgloss.Center,
		design.TitleStyle.Render(v.Def.Label),
		"  ",
		button,
	)
	endpoint := design.EndpointStyle.Render("API endpoint: " + m.Client.Endpoint(v.Def))
	return lipgloss.JoinVertical(lipgloss.Left, title, endpoint)
}

func renderFilter(m *model.Model) string {
	style := design.FilterStyle
	if m.CurrentAppMode == model.ModeFilterInput {
		style = design.FilterFocusedStyle
	}
	label := design.TextSecondaryStyle.Render(m.Viewer.Def.FilterLabel())
	hint := design.DimStyle.Render("  c clear")
	return lipgloss.JoinHorizontal(lipgloss.Center, label, " ", style.Render(m.FilterInput.View()), hint)
}

// renderBanner returns the error banner, or "" when the last fetch succeeded.
func renderBanner(m *model.Model) string {
	if m.Viewer.Error == "" {
		return ""
	}
	return design.ErrorBannerStyle.Width(m.Width - 2).Render(m.Viewer.Error)
}

func renderBody(m *model.Model) string {
	if msg := m.Viewer.EmptyMessage(); msg != "" {
		return design.EmptyNoticeStyle.Render(msg)
	}
	if len(m.Viewer.Records) == 0 {
		return ""
	}
	return m.Table.View()
}

