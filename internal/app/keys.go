package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/todo/internal/types"
	"github.com/riordanpawley/todo/internal/ui/overlay"
)

// modeKeys activate a header toggle from anywhere but the text input
var modeKeys = map[string]types.Mode{
	"1":  types.ModeView,
	"2":  types.ModeEdit,
	"3":  types.ModeExport,
	"f1": types.ModeView,
	"f2": types.ModeEdit,
	"f3": types.ModeExport,
}

// handleKey routes a key press to the focused area
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m, m.setFocus(m.focus.Next())
	case "shift+tab":
		return m, m.setFocus(m.focus.Prev())
	}

	if m.focus == types.FocusInput {
		return m.handleInputKey(msg)
	}

	if mode, ok := modeKeys[msg.String()]; ok {
		var cmd tea.Cmd
		m.header, cmd = m.header.Activate(mode)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		return m, m.setFocus(types.FocusInput)
	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.styles))
	}

	if m.focus == types.FocusHeader {
		var cmd tea.Cmd
		m.header, cmd = m.header.Update(msg)
		return m, cmd
	}
	return m.handleListKey(msg)
}

// handleInputKey edits the new-task field. Enter submits whatever was
// typed, blank included, then clears the field.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.input.Value()
		m.input.Reset()
		return m, addTask(name)
	case "esc":
		return m, m.setFocus(types.FocusList)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleListKey moves the cursor and toggles checkboxes
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.moveCursor(-m.rows.Len())
	case "G", "end":
		m.moveCursor(m.rows.Len())
	case " ", "x", "enter":
		if m.cursor == nil {
			return m, nil
		}
		cmd := m.cursor.Toggle()
		m.refreshList()
		return m, cmd
	}
	return m, nil
}
