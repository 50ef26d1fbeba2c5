package rows

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/todo/internal/domain"
	"github.com/riordanpawley/todo/internal/tasklist"
	"github.com/riordanpawley/todo/internal/types"
	"github.com/riordanpawley/todo/internal/ui/styles"
)

// Row is the per-task widget pair kept alive across renders
type Row struct {
	ref      tasklist.Ref
	Label    Label
	Checkbox Checkbox
}

func newRow(ref tasklist.Ref) *Row {
	return &Row{ref: ref}
}

// Ref returns the address the row reports toggles with
func (r *Row) Ref() tasklist.Ref {
	return r.ref
}

// Apply copies the task's state onto the widgets. It sets rather than
// flips, so applying the same task twice changes nothing.
func (r *Row) Apply(task domain.Task) {
	r.Label.SetText(task.Name)
	r.Label.SetStrikethrough(task.Completed)
	r.Checkbox.SetChecked(task.Completed)
}

// Toggle flips the checkbox and reports the new state to the store
func (r *Row) Toggle() tea.Cmd {
	ref := r.ref
	checked := r.Checkbox.Toggle()
	return func() tea.Msg {
		return types.SetCompletedMsg{Ref: ref, Completed: checked}
	}
}

// Render renders the row as a single line
func (r *Row) Render(s *styles.Styles, active bool, width int) string {
	indicator := "  "
	if active {
		indicator = s.Cursor.Render("▶ ")
	}

	check := s.Check.Render("[ ]")
	if r.Checkbox.Checked() {
		check = s.CheckDone.Render("[x]")
	}

	// Rows are exactly one line; long names are cut to what is left
	// after the indicator, checkbox and gap.
	room := width - lipgloss.Width(indicator) - lipgloss.Width(check) - 1
	text := ansi.Truncate(r.Label.Text(), max(room, 0), "…")
	label := s.TaskLabel(r.Label.Strikethrough()).Render(text)

	rowStyle := s.Row
	if active {
		rowStyle = s.RowActive
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, indicator, check, " ", label)
	line = ansi.Truncate(line, max(width, 0), "")
	return rowStyle.Width(width).MaxWidth(width).Render(line)
}
