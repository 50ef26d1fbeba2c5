// Package types contains shared types used across the application.
package types

// Mode represents the application mode picked in the header.
// It is stored and displayed but does not change behavior.
type Mode int

const (
	ModeView Mode = iota
	ModeEdit
	ModeExport
)

// Modes lists every mode in header order
var Modes = []Mode{ModeView, ModeEdit, ModeExport}

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeView:
		return "VIEW"
	case ModeEdit:
		return "EDIT"
	case ModeExport:
		return "EXPORT"
	default:
		return "UNKNOWN"
	}
}

// Label returns the toggle caption for the mode
func (m Mode) Label() string {
	switch m {
	case ModeView:
		return "View"
	case ModeEdit:
		return "Edit"
	case ModeExport:
		return "Export"
	default:
		return "?"
	}
}
