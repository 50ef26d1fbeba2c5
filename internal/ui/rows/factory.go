// Package rows reconciles task list state with long-lived row widgets.
//
// A Factory owns one Row per task address. Sync walks the list, reuses the
// row already bound to each address and creates rows only for addresses
// it has not seen. With key addressing a row follows its task wherever it
// moves; with index addressing a row belongs to a position and shows
// whatever task currently sits there.
package rows

import (
	"github.com/riordanpawley/todo/internal/tasklist"
)

// Factory keeps rows keyed by task address
type Factory struct {
	addressing tasklist.Addressing
	rows       map[tasklist.Ref]*Row
	order      []*Row
	created    int
}

// NewFactory creates an empty factory for the given addressing scheme
func NewFactory(addressing tasklist.Addressing) *Factory {
	return &Factory{
		addressing: addressing,
		rows:       make(map[tasklist.Ref]*Row),
		order:      make([]*Row, 0),
	}
}

// Addressing returns the scheme rows are keyed by
func (f *Factory) Addressing() tasklist.Addressing {
	return f.addressing
}

// Sync brings the rows in line with the list
func (f *Factory) Sync(list *tasklist.List) {
	entries := list.Entries()
	next := make(map[tasklist.Ref]*Row, len(entries))
	order := make([]*Row, 0, len(entries))

	for i, e := range entries {
		var ref tasklist.Ref = e.Key
		if f.addressing == tasklist.AddressIndex {
			ref = tasklist.Index(i)
		}

		row, ok := f.rows[ref]
		if !ok {
			row = newRow(ref)
			f.created++
		}
		row.Apply(e.Task)

		next[ref] = row
		order = append(order, row)
	}

	f.rows = next
	f.order = order
}

// Rows returns the rows in display order
func (f *Factory) Rows() []*Row {
	return f.order
}

// Row returns the row at display position i, or nil
func (f *Factory) Row(i int) *Row {
	if i < 0 || i >= len(f.order) {
		return nil
	}
	return f.order[i]
}

// Lookup returns the row bound to ref, or nil
func (f *Factory) Lookup(ref tasklist.Ref) *Row {
	return f.rows[ref]
}

// Len returns the number of rows
func (f *Factory) Len() int {
	return len(f.order)
}

// Created returns how many rows have been built since the factory was made
func (f *Factory) Created() int {
	return f.created
}
