package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOverlay is a simple overlay implementation for testing
type mockOverlay struct {
	title   string
	pressed int
}

func (m mockOverlay) Init() tea.Cmd {
	return nil
}

func (m mockOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			return m, closeOverlay
		}
		m.pressed++
	}
	return m, nil
}

func (m mockOverlay) View() string {
	return m.title
}

func (m mockOverlay) Title() string {
	return m.title
}

func (m mockOverlay) Size() (width, height int) {
	return 20, 5
}

func TestNewStack(t *testing.T) {
	stack := NewStack()
	require.NotNil(t, stack)
	assert.True(t, stack.IsEmpty())
	assert.Nil(t, stack.Current())
	assert.Nil(t, stack.Pop())
}

func TestStack_PushPop(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "one"})
	stack.Push(mockOverlay{title: "two"})

	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, "two", stack.Current().Title())

	popped := stack.Pop()
	assert.Equal(t, "two", popped.Title())
	assert.Equal(t, "one", stack.Current().Title())
}

func TestStack_UpdateReplacesTop(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "one"})

	stack.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	stack.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	top, ok := stack.Current().(mockOverlay)
	require.True(t, ok)
	assert.Equal(t, 2, top.pressed)
}

func TestStack_CloseOverlayMsgPops(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "one"})

	cmd := stack.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, CloseOverlayMsg{}, msg)

	assert.Nil(t, stack.Update(msg))
	assert.True(t, stack.IsEmpty())
}

func TestStack_UpdateEmpty(t *testing.T) {
	stack := NewStack()
	assert.Nil(t, stack.Update(tea.KeyMsg{Type: tea.KeyEnter}))
}
