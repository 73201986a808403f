package model

import (
	"octofit/internal/tui/design"

	"github.com/charmbracelet/bubbles/table"
	"github.com/mattn/go-runewidth"
)

// chromeHeight is the number of lines around the table: navigation bar,
// title, endpoint, filter box, banner, status bar and help line.
const chromeHeight = 11

// Resize applies new terminal dimensions to the table and viewports.
func (m *Model) Resize(width, height int) {
	m.Width = width
	m.Height = height
	m.Help.Width = width

	tableHeight := height - chromeHeight
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.Table.SetWidth(width)
	m.Table.SetHeight(tableHeight)

	m.DetailsViewport.Width = width * 7 / 10
	m.DetailsViewport.Height = height * 6 / 10
	m.LogViewport.Width = width * 8 / 10
	m.LogViewport.Height = height * 7 / 10
	m.ActivityLogDirty = true

	m.SyncTable()
}

// SyncTable rebuilds the table from the viewer's visible rows. Every row
// gets a trailing Details action.
func (m *Model) SyncTable() {
	if m.Viewer == nil {
		return
	}
	headers := append(append([]string{}, m.Viewer.Columns...), ActionsColumn)
	visible := m.Viewer.VisibleRows()

	widths := columnWidths(headers, visible)
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: widths[i]}
	}

	rows := make([]table.Row, len(visible))
	for i, cells := range visible {
		row := make(table.Row, 0, len(headers))
		for j, c := range cells {
			row = append(row, runewidth.Truncate(c, widths[j], "…"))
		}
		rows[i] = append(row, DetailsAction)
	}

	// Rows must be cleared before the column count changes or the table
	// renders stale rows against the new columns.
	m.Table.SetRows(nil)
	m.Table.SetColumns(columns)
	m.Table.SetRows(rows)

	if c := m.Table.Cursor(); c >= len(rows) {
		m.Table.SetCursor(max(len(rows)-1, 0))
	}
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = max(runewidth.StringWidth(h), design.MinColumnWidth)
	}
	for _, row := range rows {
		for i, c := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(c))
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i], design.MaxColumnWidth)
	}
	return widths
}

// SelectedRow returns the visible row index under the cursor, or -1.
func (m *Model) SelectedRow() int {
	if m.Viewer == nil || len(m.Table.Rows()) == 0 {
		return -1
	}
	return m.Table.Cursor()
}
