package tasklist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riordanpawley/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(l *List) []string {
	var out []string
	for _, t := range l.Tasks() {
		out = append(out, t.Name)
	}
	return out
}

func TestNew(t *testing.T) {
	l := New(PlaceFront)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, PlaceFront, l.Placement())
	assert.Empty(t, l.Keys())
	assert.Empty(t, l.Tasks())
}

func TestList_AddOrder(t *testing.T) {
	tests := []struct {
		name      string
		placement Placement
		want      []string
	}{
		{"front", PlaceFront, []string{"Y", "X"}},
		{"back", PlaceBack, []string{"X", "Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.placement)
			l.Add("X")
			l.Add("Y")
			if diff := cmp.Diff(tt.want, names(l)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestList_AddAtOverridesPlacement(t *testing.T) {
	l := New(PlaceBack)
	l.AddAt("b", false)
	l.AddAt("a", true)
	l.AddAt("c", false)

	assert.Equal(t, []string{"a", "b", "c"}, names(l))
}

func TestList_AddAcceptsEmptyName(t *testing.T) {
	l := New(PlaceFront)
	k := l.Add("")

	task, ok := l.Get(k)
	require.True(t, ok)
	assert.Equal(t, "", task.Name)
	assert.Equal(t, 1, l.Len())
}

func TestList_SetCompleted(t *testing.T) {
	l := New(PlaceBack)
	a := l.Add("a")
	b := l.Add("b")
	l.Add("c")

	require.True(t, l.SetCompleted(b, true))
	require.True(t, l.SetCompleted(b, true))

	want := []domain.Task{
		{Name: "a"},
		{Name: "b", Completed: true},
		{Name: "c"},
	}
	if diff := cmp.Diff(want, l.Tasks()); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, l.Done())

	require.True(t, l.SetCompleted(a, false))
	require.True(t, l.SetCompleted(b, false))
	assert.Equal(t, 0, l.Done())
}

func TestList_SetCompletedStaleRef(t *testing.T) {
	l := New(PlaceFront)
	l.Add("a")
	before := l.Tasks()

	other := New(PlaceFront)
	other.Add("x")
	other.Add("y")
	foreign := other.Keys()[0]

	stale := []Ref{
		Key{},
		foreign,
		Key{slot: 0, gen: 99},
		Index(-1),
		Index(1),
		Index(100),
		nil,
	}

	for _, ref := range stale {
		assert.NotPanics(t, func() {
			assert.False(t, l.SetCompleted(ref, true))
		})
	}

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, before, l.Tasks())
}

func TestList_KeyStableAcrossHeadInsert(t *testing.T) {
	l := New(PlaceFront)
	milk := l.Add("Buy milk")

	idx, ok := l.IndexOf(milk)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	l.Add("Walk dog")
	l.Add("Feed cat")

	idx, ok = l.IndexOf(milk)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	require.True(t, l.SetCompleted(milk, true))
	task, _ := l.Get(milk)
	assert.Equal(t, "Buy milk", task.Name)
	assert.True(t, task.Completed)
}

func TestList_IndexShiftsAcrossHeadInsert(t *testing.T) {
	l := New(PlaceFront)
	l.Add("Buy milk")
	row := Index(0)

	l.Add("Walk dog")

	// Same index, different task.
	task, ok := l.Get(row)
	require.True(t, ok)
	assert.Equal(t, "Walk dog", task.Name)
}

func TestList_KeyAt(t *testing.T) {
	l := New(PlaceBack)
	a := l.Add("a")
	b := l.Add("b")

	k, ok := l.KeyAt(0)
	require.True(t, ok)
	assert.Equal(t, a, k)

	k, ok = l.KeyAt(1)
	require.True(t, ok)
	assert.Equal(t, b, k)

	_, ok = l.KeyAt(2)
	assert.False(t, ok)
	_, ok = l.KeyAt(-1)
	assert.False(t, ok)
}

func TestList_Entries(t *testing.T) {
	l := New(PlaceFront)
	a := l.Add("a")
	b := l.Add("b")
	l.SetCompleted(a, true)

	want := []Entry{
		{Key: b, Task: domain.Task{Name: "b"}},
		{Key: a, Task: domain.Task{Name: "a", Completed: true}},
	}
	if diff := cmp.Diff(want, l.Entries(), cmp.AllowUnexported(Key{})); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestList_EndToEnd(t *testing.T) {
	l := New(PlaceBack)
	milk := l.Add("Buy milk")
	l.SetCompleted(milk, true)
	l.AddAt("Walk dog", true)

	want := []domain.Task{
		{Name: "Walk dog", Completed: false},
		{Name: "Buy milk", Completed: true},
	}
	if diff := cmp.Diff(want, l.Tasks()); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestKey_String(t *testing.T) {
	l := New(PlaceBack)
	k := l.Add("a")
	assert.Equal(t, "0v1", k.String())
	assert.False(t, k.IsZero())
	assert.True(t, Key{}.IsZero())
	assert.Equal(t, "#3", Index(3).String())
}

func TestParsePlacement(t *testing.T) {
	p, err := ParsePlacement("front")
	require.NoError(t, err)
	assert.Equal(t, PlaceFront, p)

	p, err = ParsePlacement("back")
	require.NoError(t, err)
	assert.Equal(t, PlaceBack, p)
	assert.Equal(t, "back", p.String())

	_, err = ParsePlacement("middle")
	assert.Error(t, err)
}

func TestParseAddressing(t *testing.T) {
	a, err := ParseAddressing("key")
	require.NoError(t, err)
	assert.Equal(t, AddressKey, a)

	a, err = ParseAddressing("index")
	require.NoError(t, err)
	assert.Equal(t, AddressIndex, a)
	assert.Equal(t, "index", a.String())

	_, err = ParseAddressing("uuid")
	assert.Error(t, err)
}
