package statusbar

import "github.com/riordanpawley/todo/internal/types"

// GetHints returns the keybinding hints for the focused area
func GetHints(focus types.Focus) string {
	switch focus {
	case types.FocusInput:
		return "Enter: add  Tab: next  ?: help  ^C: quit"
	case types.FocusList:
		return "j/k: move  Space: toggle  1-3: mode  Tab: next  q: quit"
	case types.FocusHeader:
		return "h/l: mode  Tab: next  ?: help  q: quit"
	default:
		return ""
	}
}
