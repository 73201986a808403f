package components

import (
	"strings"

	"octofit/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Header is the navigation bar: brand, one tab per route, optional right content.
type Header struct {
	Brand        string
	Tabs         []string
	Active       int
	ShowSpinner  bool
	SpinnerView  string
	Width        int
	RightContent string
}

// NewHeader creates a new header
func NewHeader(brand string) *Header {
	return &Header{
		Brand:  brand,
		Width:  80,
		Active: -1,
	}
}

// WithTabs sets the tab labels and which one is highlighted.
func (h *Header) WithTabs(labels []string, active int) *Header {
	h.Tabs = labels
	h.Active = active
	return h
}

// WithSpinner shows a spinner after the brand
func (h *Header) WithSpinner(spinnerView string) *Header {
	h.ShowSpinner = true
	h.SpinnerView = spinnerView
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// RenderTabs renders the tab strip alone.
func (h *Header) RenderTabs() string {
	parts := make([]string, 0, len(h.Tabs))
	for i, label := range h.Tabs {
		style := design.TabStyle
		if i == h.Active {
			style = design.ActiveTabStyle
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, " ")
}

// Render returns the styled header
func (h *Header) Render() string {
	leftParts := []string{design.BrandStyle.Render(h.Brand)}
	if h.ShowSpinner && h.SpinnerView != "" {
		leftParts = append(leftParts, h.SpinnerView)
	}
	if len(h.Tabs) > 0 {
		leftParts = append(leftParts, h.RenderTabs())
	}
	leftContent := lipgloss.JoinHorizontal(lipgloss.Center, leftParts...)

	availableWidth := h.Width - design.SpaceSM*2
	content := leftContent
	if h.RightContent != "" {
		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(h.RightContent)
		if leftWidth+rightWidth+2 <= availableWidth {
			content = leftContent + strings.Repeat(" ", availableWidth-leftWidth-rightWidth) + h.RightContent
		}
	}

	return design.HeaderStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}

// truncate shortens s to width terminal cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
