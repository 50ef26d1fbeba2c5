package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todo/internal/types"
)

// Styles holds all the UI styles
type Styles struct {
	// Window chrome
	Window lipgloss.Style
	Title  lipgloss.Style

	// Header toggles
	Toggle        lipgloss.Style
	ToggleActive  lipgloss.Style
	ToggleFocused lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Task rows
	Row       lipgloss.Style
	RowActive lipgloss.Style
	Check     lipgloss.Style
	CheckDone lipgloss.Style
	Label     lipgloss.Style
	LabelDone lipgloss.Style
	Cursor    lipgloss.Style
	Empty     lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	MenuItem     lipgloss.Style
	MenuKey      lipgloss.Style
	Separator    lipgloss.Style
	Footer       lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Window: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1),

		Title: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			Padding(0, 1),

		Toggle: lipgloss.NewStyle().
			Foreground(Subtext0).
			Background(Surface0).
			Padding(0, 1),

		ToggleActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Bold(true).
			Padding(0, 1),

		ToggleFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Lavender),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		Row: lipgloss.NewStyle().
			Foreground(Text),

		RowActive: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface0),

		Check: lipgloss.NewStyle().
			Foreground(Overlay1),

		CheckDone: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(Text),

		LabelDone: lipgloss.NewStyle().
			Foreground(Overlay0).
			Strikethrough(true),

		Cursor: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(Overlay1).
			Italic(true),
	}
}

// ModeBadge returns the status bar badge style for a mode
func (s *Styles) ModeBadge(mode types.Mode) lipgloss.Style {
	color, ok := ModeColors[mode]
	if !ok {
		color = Overlay1
	}
	return s.StatusMode.Background(color)
}

// TaskLabel returns the label style for a task row
func (s *Styles) TaskLabel(completed bool) lipgloss.Style {
	if completed {
		return s.LabelDone
	}
	return s.Label
}
