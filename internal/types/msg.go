package types

import "github.com/riordanpawley/todo/internal/tasklist"

// SetModeMsg replaces the store's current mode
type SetModeMsg struct {
	Mode Mode
}

// SetCompletedMsg sets the completed flag of the task Ref points at.
// A Ref that no longer resolves is ignored.
type SetCompletedMsg struct {
	Ref       tasklist.Ref
	Completed bool
}

// AddTaskMsg inserts a new open task
type AddTaskMsg struct {
	Name string
}
