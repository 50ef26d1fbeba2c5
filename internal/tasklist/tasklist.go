// Package tasklist implements the ordered task collection backing the
// to-do store.
//
// Tasks live in an append-only arena of slots; the display order is a
// separate slice of slot numbers. Add hands back a Key naming the slot,
// so a row can keep addressing its task while other tasks are inserted
// at either end.
package tasklist

import "github.com/riordanpawley/todo/internal/domain"

type slot struct {
	task domain.Task
	gen  uint32
}

// Entry pairs a task with its stable key
type Entry struct {
	Key  Key
	Task domain.Task
}

// List is an ordered sequence of tasks
type List struct {
	placement Placement
	slots     []slot
	order     []uint32
	nextGen   uint32
}

// New creates an empty list that inserts according to placement
func New(placement Placement) *List {
	return &List{
		placement: placement,
		slots:     make([]slot, 0),
		order:     make([]uint32, 0),
	}
}

// Placement returns the list's default insertion policy
func (l *List) Placement() Placement {
	return l.placement
}

// Add inserts a new open task using the list's placement policy
func (l *List) Add(name string) Key {
	return l.AddAt(name, l.placement == PlaceFront)
}

// AddAt inserts a new open task at the head (front=true) or the tail
func (l *List) AddAt(name string, front bool) Key {
	l.nextGen++
	n := uint32(len(l.slots))
	l.slots = append(l.slots, slot{task: domain.NewTask(name), gen: l.nextGen})

	if front {
		l.order = append(l.order, 0)
		copy(l.order[1:], l.order)
		l.order[0] = n
	} else {
		l.order = append(l.order, n)
	}

	return Key{slot: n, gen: l.nextGen}
}

// SetCompleted sets the completed flag of the task ref points at.
// A ref that no longer resolves is ignored; the return value only
// reports whether a task was found.
func (l *List) SetCompleted(ref Ref, completed bool) bool {
	if ref == nil {
		return false
	}
	n, ok := ref.resolve(l)
	if !ok {
		return false
	}
	l.slots[n].task.Completed = completed
	return true
}

// Get returns the task ref points at
func (l *List) Get(ref Ref) (domain.Task, bool) {
	if ref == nil {
		return domain.Task{}, false
	}
	n, ok := ref.resolve(l)
	if !ok {
		return domain.Task{}, false
	}
	return l.slots[n].task, true
}

// Len returns the number of tasks
func (l *List) Len() int {
	return len(l.order)
}

// KeyAt returns the key of the task displayed at position i
func (l *List) KeyAt(i int) (Key, bool) {
	if i < 0 || i >= len(l.order) {
		return Key{}, false
	}
	n := l.order[i]
	return Key{slot: n, gen: l.slots[n].gen}, true
}

// IndexOf returns the current display position of k
func (l *List) IndexOf(k Key) (int, bool) {
	n, ok := k.resolve(l)
	if !ok {
		return 0, false
	}
	for i, s := range l.order {
		if int(s) == n {
			return i, true
		}
	}
	return 0, false
}

// Keys returns the keys in display order
func (l *List) Keys() []Key {
	keys := make([]Key, len(l.order))
	for i, n := range l.order {
		keys[i] = Key{slot: n, gen: l.slots[n].gen}
	}
	return keys
}

// Tasks returns a snapshot of the tasks in display order
func (l *List) Tasks() []domain.Task {
	tasks := make([]domain.Task, len(l.order))
	for i, n := range l.order {
		tasks[i] = l.slots[n].task
	}
	return tasks
}

// Entries returns key/task pairs in display order
func (l *List) Entries() []Entry {
	entries := make([]Entry, len(l.order))
	for i, n := range l.order {
		entries[i] = Entry{
			Key:  Key{slot: n, gen: l.slots[n].gen},
			Task: l.slots[n].task,
		}
	}
	return entries
}

// Done counts completed tasks
func (l *List) Done() int {
	done := 0
	for _, n := range l.order {
		if l.slots[n].task.Completed {
			done++
		}
	}
	return done
}
