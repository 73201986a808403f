package view

import (
	"fmt"
	"strings"

	"octofit/internal/tui/design"
	"octofit/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// renderDetailsOverlay shows the selected record as indented JSON.
func renderDetailsOverlay(m *model.Model) string {
	title := design.OverlayTitleStyle.Render(m.Viewer.Def.DetailsTitle())
	footer := design.OverlayFooterStyle.Render("↑/↓ scroll  •  y copy  •  Esc close")

	frameW := design.OverlayContainerStyle.GetHorizontalFrameSize()
	frameH := design.OverlayContainerStyle.GetVerticalFrameSize()
	m.DetailsViewport.Width = max(m.Width*7/10-frameW, 0)
	m.DetailsViewport.Height = max(m.Height*7/10-frameH-lipgloss.Height(title)-lipgloss.Height(footer), 0)

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.DetailsViewport.View(), footer)
	return placeOverlay(m, design.OverlayContainerStyle.Render(content))
}

func renderHelpOverlay(m *model.Model) string {
	title := design.OverlayTitleStyle.Render("KEYBOARD SHORTCUTS")

	cols := [][]string{
		{
			"1-5        Jump to view",
			"Tab        Next view",
			"Shift+Tab  Previous view",
			"↑/k ↓/j    Move selection",
		},
		{
			"Enter      Record details",
			"y          Copy record",
			"r          Refresh",
			"/          Filter",
			"c          Clear filter",
		},
		{
			"L          Activity log",
			"?          Toggle help",
			"Esc        Close overlay",
			"q          Quit",
		},
	}

	rows := 0
	for _, c := range cols {
		rows = max(rows, len(c))
	}
	lines := []string{""}
	for i := 0; i < rows; i++ {
		var cells [3]string
		for j, c := range cols {
			if i < len(c) {
				cells[j] = c[i]
			}
		}
		lines = append(lines, fmt.Sprintf("%-28s%-28s%-24s", cells[0], cells[1], cells[2]))
	}

	box := design.OverlayContainerStyle.Render(title + "\n" + strings.Join(lines, "\n"))
	return placeOverlay(m, box)
}

func renderLogOverlay(m *model.Model) string {
	title := design.OverlayTitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")

	frameW := design.OverlayContainerStyle.GetHorizontalFrameSize()
	frameH := design.OverlayContainerStyle.GetVerticalFrameSize()
	width := max(m.Width*8/10-frameW, 0)
	height := max(m.Height*7/10-frameH-lipgloss.Height(title), 0)

	resized := m.LogViewport.Width != width || m.LogViewport.Height != height
	m.LogViewport.Width = width
	m.LogViewport.Height = height
	if m.ActivityLogDirty || resized {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return placeOverlay(m, design.OverlayContainerStyle.Render(content))
}

// PrepareLogContent applies color styles based on log level markers.
func PrepareLogContent(lines []string) string {
	if len(lines) == 0 {
		return design.DimStyle.Render("No activity yet.")
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
