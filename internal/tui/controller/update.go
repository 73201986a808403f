package controller

import (
	"fmt"
	"strings"
	"time"

	"octofit/internal/tui/model"
	"octofit/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerSubsystem = "Controller"

// For mocking in tests
var clipboardWriteAll = clipboard.WriteAll

// Update is the single entry point of the update loop.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case model.FetchResultMsg:
		cmds = append(cmds, handleFetchResult(m, msg))

	case model.NewLogEntryMsg:
		handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.LogChannelClosedMsg:
		// nothing left to listen to

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarMessageType = model.StatusBarInfo

	case tea.KeyMsg:
		cmds = append(cmds, handleKeyPress(m, msg))

	default:
		var cmd tea.Cmd
		switch m.CurrentAppMode {
		case model.ModeLogOverlay:
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		case model.ModeDetailsOverlay:
			m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
		case model.ModeFilterInput:
			m.FilterInput, cmd = m.FilterInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func handleFetchResult(m *model.Model, msg model.FetchResultMsg) tea.Cmd {
	if !m.ApplyFetchResult(msg) {
		return nil
	}
	def := m.Viewer.Def
	if msg.Err != nil {
		return m.SetStatusMessage(def.ErrorMessage(), model.StatusBarError, 5*time.Second)
	}
	logging.Info(controllerSubsystem, "loaded %d %s", len(msg.Records), def.Name)
	return m.SetStatusMessage(fmt.Sprintf("Loaded %d %s", len(msg.Records), def.Name), model.StatusBarSuccess, 3*time.Second)
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) {
	if msg.Entry.Level < logging.LevelInfo && !m.DebugMode {
		return
	}
	model.AddRawLineToActivityLog(m, msg.Entry.Format())
}

func handleKeyPress(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeFilterInput:
		return handleFilterKeys(m, msg)
	case model.ModeDetailsOverlay:
		return handleDetailsKeys(m, msg)
	case model.ModeHelpOverlay:
		if key.Matches(msg, m.Keys.Close, m.Keys.Help) {
			m.CurrentAppMode = m.LastAppMode
		}
		return nil
	case model.ModeLogOverlay:
		return handleLogKeys(m, msg)
	case model.ModeQuitting:
		return nil
	}
	return handleDashboardKeys(m, msg)
}

func handleDashboardKeys(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)

	case key.Matches(msg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay

	case key.Matches(msg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true

	case key.Matches(msg, m.Keys.NextTab):
		return m.CycleTab(1)

	case key.Matches(msg, m.Keys.PrevTab):
		return m.CycleTab(-1)

	case key.Matches(msg, m.Keys.JumpTab):
		return m.SwitchTab(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.Keys.Refresh):
		// The refresh action is disabled while a request is in flight.
		if m.Viewer.Loading {
			return nil
		}
		return m.Refresh()

	case key.Matches(msg, m.Keys.Filter):
		m.CurrentAppMode = model.ModeFilterInput
		return m.FilterInput.Focus()

	case key.Matches(msg, m.Keys.ClearFilter):
		m.FilterInput.SetValue("")
		m.Viewer.ClearFilter()
		m.SyncTable()

	case key.Matches(msg, m.Keys.Details):
		return openDetails(m)

	case key.Matches(msg, m.Keys.Copy):
		row := m.SelectedRow()
		if row < 0 {
			return nil
		}
		return copyToClipboard(m, m.Viewer.Visible()[row].Pretty(), m.Viewer.Def.Singular+" copied to clipboard")

	default:
		var cmd tea.Cmd
		m.Table, cmd = m.Table.Update(msg)
		return cmd
	}
	return nil
}

func handleFilterKeys(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.FilterInput.Blur()
		m.CurrentAppMode = model.ModeDashboard
		return nil
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	if m.FilterInput.Value() != m.Viewer.Filter {
		m.Viewer.SetFilter(m.FilterInput.Value())
		m.Table.SetCursor(0)
		m.SyncTable()
	}
	return cmd
}

func handleDetailsKeys(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Close), key.Matches(msg, m.Keys.Quit), msg.Type == tea.KeyEnter:
		m.Viewer.CloseDetails()
		m.CurrentAppMode = model.ModeDashboard
		return nil
	case key.Matches(msg, m.Keys.Copy):
		return copyToClipboard(m, m.Viewer.DetailsBody(), m.Viewer.Def.Singular+" copied to clipboard")
	}
	var cmd tea.Cmd
	m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
	return cmd
}

func handleLogKeys(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Close), key.Matches(msg, m.Keys.ToggleLog):
		m.CurrentAppMode = m.LastAppMode
		return nil
	case key.Matches(msg, m.Keys.Copy):
		return copyToClipboard(m, strings.Join(m.ActivityLog, "\n"), "Logs copied to clipboard")
	}
	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(msg)
	return cmd
}

func openDetails(m *model.Model) tea.Cmd {
	row := m.SelectedRow()
	if row < 0 {
		return nil
	}
	if err := m.Viewer.OpenDetails(row); err != nil {
		logging.Warn(controllerSubsystem, "open details: %v", err)
		return nil
	}
	m.DetailsViewport.SetContent(m.Viewer.DetailsBody())
	m.DetailsViewport.GotoTop()
	m.CurrentAppMode = model.ModeDetailsOverlay
	return nil
}

func copyToClipboard(m *model.Model, content, success string) tea.Cmd {
	if err := clipboardWriteAll(content); err != nil {
		logging.Error(controllerSubsystem, err, "copy to clipboard")
		return m.SetStatusMessage("Failed to copy to clipboard", model.StatusBarError, 3*time.Second)
	}
	return m.SetStatusMessage(success, model.StatusBarSuccess, 3*time.Second)
}

func quit(m *model.Model) tea.Cmd {
	m.QuitApp = true
	m.CurrentAppMode = model.ModeQuitting
	m.Shutdown()
	return tea.Quit
}
