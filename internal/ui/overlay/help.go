package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/todo/internal/ui/styles"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays the keybinding reference
type HelpOverlay struct {
	styles     *styles.Styles
	scroll     int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay(s *styles.Styles) *HelpOverlay {
	return &HelpOverlay{
		styles:     s,
		viewHeight: 16,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "?":
		return h, closeOverlay
	case "j", "down":
		if h.scroll < h.maxScroll() {
			h.scroll++
		}
	case "k", "up":
		if h.scroll > 0 {
			h.scroll--
		}
	}
	return h, nil
}

// View renders the visible part of the keybinding list
func (h *HelpOverlay) View() string {
	lines := h.lines()
	start := min(h.scroll, len(lines))
	end := min(start+h.viewHeight, len(lines))
	result := strings.Join(lines[start:end], "\n")

	if h.maxScroll() > 0 {
		result += "\n\n" + h.styles.Footer.Render("[j/k to scroll]")
	}
	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 48, h.viewHeight + 4
}

func (h *HelpOverlay) maxScroll() int {
	return max(0, len(h.lines())-h.viewHeight)
}

func (h *HelpOverlay) lines() []string {
	var lines []string
	for i, cat := range Categories() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, h.styles.OverlayTitle.UnsetMarginBottom().Render(cat.Name+":"))
		for _, b := range cat.Bindings {
			lines = append(lines, "  "+h.styles.MenuKey.Render(b.Key)+"  "+h.styles.MenuItem.Render(b.Description))
		}
	}
	return lines
}

// Categories returns all keybinding categories
func Categories() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Tasks",
			Bindings: []KeyBinding{
				{Key: "Enter", Description: "Add typed task (input)"},
				{Key: "j/k", Description: "Move cursor (list)"},
				{Key: "Space", Description: "Toggle completed (list)"},
			},
		},
		{
			Name: "Mode",
			Bindings: []KeyBinding{
				{Key: "h/l", Description: "Previous/next mode (header)"},
				{Key: "1/2/3", Description: "View/Edit/Export"},
			},
		},
		{
			Name: "Other",
			Bindings: []KeyBinding{
				{Key: "Tab", Description: "Next area"},
				{Key: "?", Description: "Help (this screen)"},
				{Key: "q", Description: "Quit"},
				{Key: "Ctrl+C", Description: "Quit from anywhere"},
			},
		},
	}
}
