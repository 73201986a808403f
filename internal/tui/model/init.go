package model

import (
	"context"
	"fmt"

	"octofit/internal/api"
	"octofit/internal/resource"
	"octofit/internal/tui/design"
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

const subsystem = "TUI"

// TUIConfig carries everything the TUI needs from the command line.
type TUIConfig struct {
	Client       api.Client
	InitialRoute string
	DebugMode    bool
	ColorMode    string
}

// InitializeModel creates the TUI model. The initial route may be a route
// path ("/teams") or a resource name; empty selects the first tab.
func InitializeModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) (*Model, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("tui: api client is required")
	}

	tabs := resource.All()
	active := 0
	if cfg.InitialRoute != "" {
		def, ok := resource.Lookup(cfg.InitialRoute)
		if !ok {
			return nil, fmt.Errorf("unknown route %q (want one of %v)", cfg.InitialRoute, resource.Names())
		}
		active = resource.Index(def.Name)
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		CurrentAppMode: ModeDashboard,
		DebugMode:      cfg.DebugMode,
		ColorMode:      cfg.ColorMode,

		Client:    cfg.Client,
		Tabs:      tabs,
		ActiveTab: active,

		Table:           table.New(table.WithFocused(true)),
		FilterInput:     textinput.New(),
		DetailsViewport: viewport.New(80, 20),
		LogViewport:     viewport.New(80, 20),
		Spinner:         spinner.New(),
		Keys:            DefaultKeyMap(),
		Help:            help.New(),
		ActivityLog:     []string{},

		LogChannel: logChannel,

		ctx:       ctx,
		cancelAll: cancel,
	}

	m.Spinner.Spinner = spinner.Dot

	styles := table.DefaultStyles()
	styles.Header = design.TableHeaderStyle
	styles.Cell = design.TableCellStyle
	styles.Selected = design.TableSelectedStyle
	m.Table.SetStyles(styles)

	m.FilterInput.Placeholder = "Search by keyword"
	m.FilterInput.CharLimit = 100
	m.FilterInput.Width = 30
	m.FilterInput.Prompt = "/ "

	m.mount(active)
	return m, nil
}

// Init starts the spinner, the first fetch and the log listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		m.Refresh(),
		ListenForLogEntriesCmd(m.LogChannel),
	)
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev view"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "jump to view"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter", "d"),
			key.WithHelp("enter", "details"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filter"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy record"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "activity log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// mount replaces the viewer with a fresh one for tab i. Requests issued by
// the previous viewer are cancelled and their results will be dropped.
func (m *Model) mount(i int) {
	if m.cancelMount != nil {
		m.cancelMount()
	}
	m.mountCtx, m.cancelMount = context.WithCancel(m.ctx)
	m.ActiveTab = i
	m.Viewer = viewer.New(m.Tabs[i])
	m.FilterInput.SetValue("")
	m.FilterInput.Blur()
	m.Table.SetCursor(0)
	m.SyncTable()
	logging.Debug(subsystem, "mounted %s viewer #%d", m.Viewer.Def.Name, m.Viewer.ID)
}

// SwitchTab mounts tab i and starts its fetch. Selecting the active tab is a no-op.
func (m *Model) SwitchTab(i int) tea.Cmd {
	if i < 0 || i >= len(m.Tabs) || i == m.ActiveTab {
		return nil
	}
	m.mount(i)
	return m.Refresh()
}

// CycleTab moves the active tab by delta, wrapping around.
func (m *Model) CycleTab(delta int) tea.Cmd {
	n := len(m.Tabs)
	return m.SwitchTab(((m.ActiveTab+delta)%n + n) % n)
}

// Refresh issues a fetch for the mounted viewer.
func (m *Model) Refresh() tea.Cmd {
	tok := m.Viewer.BeginFetch()
	return FetchCollectionCmd(m.mountCtx, m.Client, m.Viewer.ID, m.Viewer.Def, tok)
}

// ApplyFetchResult routes a fetch result to the mounted viewer. It returns
// false when the result was dropped.
func (m *Model) ApplyFetchResult(msg FetchResultMsg) bool {
	if m.Viewer == nil || msg.ViewerID != m.Viewer.ID {
		logging.Debug(subsystem, "dropping result for unmounted viewer #%d", msg.ViewerID)
		return false
	}
	var applied bool
	if msg.Err != nil {
		applied = m.Viewer.Fail(msg.Token, msg.Err)
	} else {
		applied = m.Viewer.Complete(msg.Token, msg.Records)
	}
	if applied {
		if m.CurrentAppMode == ModeDetailsOverlay && !m.Viewer.DetailsOpen() {
			m.CurrentAppMode = ModeDashboard
		}
		m.SyncTable()
	}
	return applied
}

// Shutdown cancels every outstanding request.
func (m *Model) Shutdown() {
	if m.cancelAll != nil {
		m.cancelAll()
	}
}

// AddRawLineToActivityLog appends a formatted line, keeping at most MaxActivityLogLines.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}
