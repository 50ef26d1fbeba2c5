package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todo/internal/types"
	"github.com/riordanpawley/todo/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the window
type StatusBar struct {
	mode   types.Mode
	focus  types.Focus
	done   int
	total  int
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar
func New(mode types.Mode, focus types.Focus, done, total, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		focus:  focus,
		done:   done,
		total:  total,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.ModeBadge(sb.mode).Render(sb.mode.String())

	parts := []string{modeBadge}
	if hints := GetHints(sb.focus); hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)

	count := sb.styles.StatusInfo.Render(sb.count())

	// Push the count to the right edge when there is room
	gap := sb.width - lipgloss.Width(content) - lipgloss.Width(count) - 2
	if gap > 0 {
		content = lipgloss.JoinHorizontal(lipgloss.Left, content, lipgloss.NewStyle().Width(gap).Render(""), count)
	}

	return sb.styles.StatusBar.Width(sb.width).MaxWidth(sb.width).Render(content)
}

func (sb StatusBar) count() string {
	if sb.total == 0 {
		return "no tasks"
	}
	return fmt.Sprintf("%d/%d done", sb.done, sb.total)
}
