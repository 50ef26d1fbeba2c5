// Package header implements the View/Edit/Export mode selector.
//
// The header is a child of the app model. It only remembers which of its
// toggles is pressed and reports activations upward as types.SetModeMsg;
// it never sees the parent's state.
package header

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todo/internal/types"
	"github.com/riordanpawley/todo/internal/ui/styles"
)

// Model is the toggle group
type Model struct {
	active  int
	focused bool
	styles  *styles.Styles
}

// New creates a header with the View toggle pressed
func New(s *styles.Styles) Model {
	return Model{
		active: 0,
		styles: s,
	}
}

// Init returns no initial command
func (m Model) Init() tea.Cmd {
	return nil
}

// Focus gives the header keyboard focus
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes keyboard focus
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the header has keyboard focus
func (m Model) Focused() bool {
	return m.focused
}

// Active returns the mode whose toggle is pressed
func (m Model) Active() types.Mode {
	return types.Modes[m.active]
}

// Update moves the pressed toggle with left/right while focused
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		return m.Activate(types.Modes[(m.active+len(types.Modes)-1)%len(types.Modes)])
	case "right", "l":
		return m.Activate(types.Modes[(m.active+1)%len(types.Modes)])
	}
	return m, nil
}

// Activate presses the toggle for mode. Pressing the toggle that is
// already down emits nothing, as with any exclusive toggle group.
func (m Model) Activate(mode types.Mode) (Model, tea.Cmd) {
	idx := -1
	for i, candidate := range types.Modes {
		if candidate == mode {
			idx = i
			break
		}
	}
	if idx < 0 || idx == m.active {
		return m, nil
	}

	m.active = idx
	return m, setMode(mode)
}

func setMode(mode types.Mode) tea.Cmd {
	return func() tea.Msg {
		return types.SetModeMsg{Mode: mode}
	}
}

// View renders the three toggles side by side
func (m Model) View() string {
	toggles := make([]string, 0, len(types.Modes))
	for i, mode := range types.Modes {
		style := m.styles.Toggle
		if i == m.active {
			style = m.styles.ToggleActive
		}
		toggles = append(toggles, style.Render(mode.Label()))
	}

	group := lipgloss.JoinHorizontal(lipgloss.Top, toggles...)
	if m.focused {
		return m.styles.ToggleFocused.Render(group)
	}
	return group + "\n" + strings.Repeat(" ", lipgloss.Width(group))
}
