// Package app contains the main application model and TEA implementation.
//
// Model is the store: it owns the task list and the current mode, and its
// Update is the only code that mutates them. Child components (header,
// rows) report intent by returning commands that produce types messages.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/todo/internal/config"
	"github.com/riordanpawley/todo/internal/domain"
	"github.com/riordanpawley/todo/internal/logging"
	"github.com/riordanpawley/todo/internal/tasklist"
	"github.com/riordanpawley/todo/internal/types"
	"github.com/riordanpawley/todo/internal/ui/header"
	"github.com/riordanpawley/todo/internal/ui/overlay"
	"github.com/riordanpawley/todo/internal/ui/rows"
	"github.com/riordanpawley/todo/internal/ui/styles"
)

// Model is the main application state
type Model struct {
	// Core data
	tasks *tasklist.List
	mode  types.Mode

	// Widgets
	header header.Model
	input  textinput.Model
	list   viewport.Model
	rows   *rows.Factory

	// cursor is the focused row. Rows are reused across syncs, so the
	// cursor follows whatever the row is bound to.
	cursor *rows.Row
	focus  types.Focus

	overlayStack *overlay.Stack

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger
}

// New creates a new application model with the given config
func New(cfg *config.Config, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	s := styles.New()

	ti := textinput.New()
	ti.Placeholder = "New task..."
	ti.Prompt = ""
	ti.Focus()

	m := Model{
		tasks:        tasklist.New(cfg.Placement()),
		mode:         types.ModeView,
		header:       header.New(s),
		input:        ti,
		list:         viewport.New(cfg.UI.MinWidth, 1),
		rows:         rows.NewFactory(cfg.Addressing()),
		focus:        types.FocusInput,
		overlayStack: overlay.NewStack(),
		width:        cfg.UI.MinWidth,
		height:       cfg.UI.MinHeight,
		styles:       s,
		config:       cfg,
		logger:       logger,
	}
	m.resize()
	m.refreshList()
	return m
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Mode returns the stored application mode
func (m Model) Mode() types.Mode {
	return m.mode
}

// Tasks returns a snapshot of the task list in display order
func (m Model) Tasks() []domain.Task {
	return m.tasks.Tasks()
}

// Focus returns the focused area of the window
func (m Model) Focus() types.Focus {
	return m.focus
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refreshList()
		return m, nil

	case types.SetModeMsg:
		m.logger.Debug("set mode", "mode", msg.Mode)
		m.mode = msg.Mode
		return m, nil

	case types.SetCompletedMsg:
		m.logger.Debug("set completed", "ref", msg.Ref, "completed", msg.Completed)
		m.tasks.SetCompleted(msg.Ref, msg.Completed)
		m.sync()
		return m, nil

	case types.AddTaskMsg:
		key := m.tasks.Add(msg.Name)
		m.logger.Debug("task added", "key", key, "placement", m.tasks.Placement(), "count", m.tasks.Len())
		m.sync()
		return m, nil

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case tea.KeyMsg:
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)
	}

	// Cursor blink and other widget ticks
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// sync reconciles the rows with the task list and redraws the list area
func (m *Model) sync() {
	m.rows.Sync(m.tasks)
	if m.cursor == nil || m.cursorIndex() < 0 {
		m.cursor = m.rows.Row(0)
	}
	m.refreshList()
}

// cursorIndex returns the display position of the cursor row, or -1
func (m Model) cursorIndex() int {
	if m.cursor == nil {
		return -1
	}
	for i, row := range m.rows.Rows() {
		if row == m.cursor {
			return i
		}
	}
	return -1
}

func (m *Model) moveCursor(delta int) {
	n := m.rows.Len()
	if n == 0 {
		return
	}
	idx := m.cursorIndex() + delta
	if idx < 0 {
		idx = 0
	} else if idx >= n {
		idx = n - 1
	}
	m.cursor = m.rows.Row(idx)
	m.refreshList()
}

func (m *Model) setFocus(focus types.Focus) tea.Cmd {
	m.focus = focus
	m.header.Blur()
	m.input.Blur()

	var cmd tea.Cmd
	switch focus {
	case types.FocusHeader:
		m.header.Focus()
	case types.FocusInput:
		cmd = m.input.Focus()
	}
	m.refreshList()
	return cmd
}

func addTask(name string) tea.Cmd {
	return func() tea.Msg {
		return types.AddTaskMsg{Name: name}
	}
}
