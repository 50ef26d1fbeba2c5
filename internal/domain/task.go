// Package domain holds the to-do records shared across the application.
package domain

// Task represents a single to-do item
type Task struct {
	Name      string
	Completed bool
}

// NewTask creates an open task with the given name.
// Empty names are accepted as-is.
func NewTask(name string) Task {
	return Task{Name: name}
}
