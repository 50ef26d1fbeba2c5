package tasklist

import "fmt"

// Ref addresses a task inside a List. Key and Index are the two
// implementations.
type Ref interface {
	resolve(l *List) (slot int, ok bool)
	fmt.Stringer
}

// Key is a stable handle returned by List.Add. It stays valid no matter
// what is inserted before or after it. The zero Key never resolves.
type Key struct {
	slot uint32
	gen  uint32
}

// IsZero reports whether k is the zero Key
func (k Key) IsZero() bool {
	return k.gen == 0
}

func (k Key) String() string {
	return fmt.Sprintf("%dv%d", k.slot, k.gen)
}

func (k Key) resolve(l *List) (int, bool) {
	if k.gen == 0 || int(k.slot) >= len(l.slots) {
		return 0, false
	}
	if l.slots[k.slot].gen != k.gen {
		return 0, false
	}
	return int(k.slot), true
}

// Index is a positional address into the display order
type Index int

func (i Index) String() string {
	return fmt.Sprintf("#%d", int(i))
}

func (i Index) resolve(l *List) (int, bool) {
	if i < 0 || int(i) >= len(l.order) {
		return 0, false
	}
	return int(l.order[i]), true
}
