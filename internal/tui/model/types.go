package model

import (
	"context"
	"time"

	"octofit/internal/api"
	"octofit/internal/resource"
	"octofit/internal/viewer"
	"octofit/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeDashboard AppMode = iota
	ModeFilterInput
	ModeDetailsOverlay
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeDashboard:
		return "Dashboard"
	case ModeFilterInput:
		return "FilterInput"
	case ModeDetailsOverlay:
		return "DetailsOverlay"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

const (
	MaxActivityLogLines = 1000
	// ActionsColumn is appended to every table; each row carries a "Details" action.
	ActionsColumn = "Actions"
	DetailsAction = "Details"
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	JumpTab     key.Binding
	Details     key.Binding
	Close       key.Binding
	Refresh     key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Copy        key.Binding
	ToggleLog   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Details, k.Refresh, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab, k.JumpTab},
		{k.Details, k.Close, k.Copy, k.Refresh},
		{k.Filter, k.ClearFilter, k.ToggleLog, k.Help, k.Quit},
	}
}

// Model is the state of the TUI. It is only mutated from the bubbletea update loop.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	QuitApp        bool
	CurrentAppMode AppMode
	LastAppMode    AppMode
	DebugMode      bool
	ColorMode      string

	// Navigation
	Client    api.Client
	Tabs      []resource.Definition
	ActiveTab int
	// Viewer is the mounted viewer for the active tab. It is replaced on
	// every tab switch.
	Viewer *viewer.State

	// UI State & Output
	Table                table.Model
	FilterInput          textinput.Model
	DetailsViewport      viewport.Model
	LogViewport          viewport.Model
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	ActivityLog          []string
	ActivityLogDirty     bool
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry

	// ctx is cancelled on quit; mountCtx is cancelled when the viewer is
	// replaced.
	ctx         context.Context
	cancelAll   context.CancelFunc
	mountCtx    context.Context
	cancelMount context.CancelFunc
}

// ActiveDefinition returns the resource shown by the active tab.
func (m *Model) ActiveDefinition() resource.Definition {
	return m.Tabs[m.ActiveTab]
}

// SetStatusMessage updates the status bar message and schedules its removal.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
