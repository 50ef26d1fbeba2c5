package types

// Focus identifies which part of the window receives keys
type Focus int

const (
	FocusInput Focus = iota
	FocusList
	FocusHeader
)

// focusRing is the tab order
var focusRing = []Focus{FocusHeader, FocusInput, FocusList}

// String returns the string representation of the focus area
func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusList:
		return "list"
	case FocusHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Next returns the focus area after f in tab order
func (f Focus) Next() Focus {
	return f.step(1)
}

// Prev returns the focus area before f in tab order
func (f Focus) Prev() Focus {
	return f.step(len(focusRing) - 1)
}

func (f Focus) step(n int) Focus {
	for i, candidate := range focusRing {
		if candidate == f {
			return focusRing[(i+n)%len(focusRing)]
		}
	}
	return FocusInput
}
