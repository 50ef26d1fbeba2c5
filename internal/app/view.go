package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todo/internal/types"
	"github.com/riordanpawley/todo/internal/ui/statusbar"
)

// Rows taken by everything except the task list: title, header (2),
// input box (3) and status bar.
const chromeHeight = 7

const emptyListText = "No tasks yet. Type above and press Enter."

// windowSize returns the terminal size clamped to the configured minimum
func (m Model) windowSize() (int, int) {
	return max(m.width, m.config.UI.MinWidth), max(m.height, m.config.UI.MinHeight)
}

// resize fits the input and list widgets to the window
func (m *Model) resize() {
	width, height := m.windowSize()
	m.input.Width = max(1, width-5)
	m.list.Width = width
	m.list.Height = max(1, height-chromeHeight)
}

// refreshList re-renders every row into the scrollable list area and
// keeps the cursor row in view
func (m *Model) refreshList() {
	width := m.list.Width
	if m.rows.Len() == 0 {
		m.list.SetContent(m.styles.Empty.Render(emptyListText))
		m.list.GotoTop()
		return
	}

	lines := make([]string, 0, m.rows.Len())
	for _, row := range m.rows.Rows() {
		active := row == m.cursor && m.focus == types.FocusList
		lines = append(lines, row.Render(m.styles, active, width))
	}
	m.list.SetContent(strings.Join(lines, "\n"))

	idx := m.cursorIndex()
	if idx < 0 {
		return
	}
	if idx < m.list.YOffset {
		m.list.SetYOffset(idx)
	} else if idx >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(idx - m.list.Height + 1)
	}
}

// View renders the window
func (m Model) View() string {
	width, height := m.windowSize()

	title := m.styles.Title.Render(m.config.UI.Title)

	inputStyle := m.styles.Input
	if m.focus == types.FocusInput {
		inputStyle = m.styles.InputFocused
	}
	input := inputStyle.Width(width - 2).Render(m.input.View())

	sb := statusbar.New(m.mode, m.focus, m.tasks.Done(), m.tasks.Len(), width, m.styles)

	view := lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.header.View(),
		input,
		m.list.View(),
		sb.Render(),
	)

	if !m.overlayStack.IsEmpty() {
		current := m.overlayStack.Current()
		overlayWidth, overlayHeight := current.Size()

		content := current.View()
		if t := current.Title(); t != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(t), content)
		}
		box := m.styles.Overlay.
			Width(min(overlayWidth, width-2)).
			Height(min(overlayHeight, height-2)).
			Render(content)

		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}

	return view
}
