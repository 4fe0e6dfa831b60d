package design

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/designspace/internal/generator"
)

func newGrid() []any {
	return []any{
		[]any{int32(1), int32(2)},
		[]any{int32(3), int32(4)},
	}
}

func TestGetValue_Paths(t *testing.T) {
	shape := &generator.Struct{
		Choice: "circle",
		Values: map[string]any{"Radius": 2.5},
		Order:  []string{"Radius"},
	}
	d := New("d1", map[string]any{"Grid": newGrid(), "Shape": shape, "Flag": true})

	testCases := []struct {
		id       string
		expected any
		found    bool
	}{
		{id: "Flag", expected: true, found: true},
		{id: "Grid.2.1", expected: int32(3), found: true},
		{id: "Grid.1", expected: []any{int32(1), int32(2)}, found: true},
		{id: "Shape.Radius", expected: 2.5, found: true},
		{id: "Grid.3", found: false},
		{id: "Shape.Side", found: false},
		{id: "Flag.1", found: false},
		{id: "Missing", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			v, ok := d.GetValue(tc.id)
			assert.Equal(t, tc.found, ok)
			if diff := cmp.Diff(tc.expected, v); diff != "" {
				t.Errorf("GetValue(%q) mismatch (-want +got):\n%s", tc.id, diff)
			}
		})
	}
}

func TestSetValue_SharedStorage(t *testing.T) {
	d := New("d1", map[string]any{"Grid": newGrid()})

	require.NoError(t, d.SetValue("Grid.1.2", int32(20)))
	grid, ok := d.GetValue("Grid")
	require.True(t, ok)
	want := []any{
		[]any{int32(1), int32(20)},
		[]any{int32(3), int32(4)},
	}
	if diff := cmp.Diff(want, grid); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}

	assert.ErrorIs(t, d.SetValue("Grid.5", 1), ErrInvalidPath)

	require.NoError(t, d.SetValue("Other", "x"))
	v, _ := d.GetValue("Other")
	assert.Equal(t, "x", v)
}

func TestSetValue_Struct(t *testing.T) {
	shape := &generator.Struct{Values: map[string]any{"Radius": 1.0}, Order: []string{"Radius"}}
	d := New("d1", map[string]any{"Shape": shape})

	require.NoError(t, d.SetValue("Shape.Radius", 4.0))
	require.NoError(t, d.SetValue("Shape.Label", "big"))
	assert.Equal(t, 4.0, shape.Values["Radius"])
	assert.Equal(t, []string{"Radius", "Label"}, shape.Order)
}

func TestReadOnly(t *testing.T) {
	d := New("d1", map[string]any{"A": 1})
	assert.False(t, d.IsReadOnly())
	d.SetReadOnly()
	assert.True(t, d.IsReadOnly())
	assert.ErrorIs(t, d.SetValue("A", 2), ErrReadOnly)

	v, _ := d.GetValue("A")
	assert.Equal(t, 1, v)
}

func TestSupportedIDs(t *testing.T) {
	d := New("d1", nil, WithSupportedIDs([]string{"A", "Grid"}))
	require.NoError(t, d.SetValue("A", 1))
	assert.ErrorIs(t, d.SetValue("B", 1), ErrUnknownParam)

	require.NoError(t, d.SetValue("Grid", newGrid()))
	require.NoError(t, d.SetValue("Grid.1.1", int32(9)), "paths below a supported ID are allowed")
}

func TestExtendScope(t *testing.T) {
	base := New("base", map[string]any{"A": 1, "B": 2})
	overlay := New("overlay", map[string]any{"B": 20})
	other := New("other", map[string]any{"A": 100, "C": 3})

	overlay.ExtendScope(base)
	overlay.ExtendScope(other)
	overlay.ExtendScope(base)
	overlay.ExtendScope(overlay)
	overlay.ExtendScope(nil)

	v, _ := overlay.GetValue("B")
	assert.Equal(t, 20, v, "local values win")
	v, _ = overlay.GetValue("A")
	assert.Equal(t, 1, v, "extensions are searched in insertion order")
	v, _ = overlay.GetValue("C")
	assert.Equal(t, 3, v)

	overlay.ReduceScope(base)
	v, _ = overlay.GetValue("A")
	assert.Equal(t, 100, v)

	overlay.ReduceScope(other)
	_, ok := overlay.GetValue("C")
	assert.False(t, ok)
}

func TestExtendScope_Cycle(t *testing.T) {
	a := New("a", map[string]any{"A": 1})
	b := New("b", map[string]any{"B": 2})
	a.ExtendScope(b)
	b.ExtendScope(a)

	_, ok := a.GetValue("Missing")
	assert.False(t, ok)
	v, ok := b.GetValue("A")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestNew_GeneratesID(t *testing.T) {
	a, b := New("", nil), New("", nil)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Empty(t, a.Keys())
}
