package rows

// Label is the text part of a row
type Label struct {
	text          string
	strikethrough bool
}

// SetText sets the label text
func (l *Label) SetText(text string) {
	l.text = text
}

// SetStrikethrough sets whether the label is struck through
func (l *Label) SetStrikethrough(on bool) {
	l.strikethrough = on
}

// Text returns the label text
func (l Label) Text() string {
	return l.text
}

// Strikethrough reports whether the label is struck through
func (l Label) Strikethrough() bool {
	return l.strikethrough
}

// Checkbox is the completion indicator of a row
type Checkbox struct {
	checked bool
}

// SetChecked sets the checked state
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Checked reports the checked state
func (c Checkbox) Checked() bool {
	return c.checked
}

// Toggle flips the checked state and returns the new value
func (c *Checkbox) Toggle() bool {
	c.checked = !c.checked
	return c.checked
}
