package designspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/designspace/internal/generator"
	"github.com/vk/designspace/internal/param"
	"github.com/vk/designspace/internal/paramstore"
)

func mustParam(t *testing.T, name, typ string, opts ...param.Option) *param.Param {
	t.Helper()
	p, err := param.New(name, typ, opts...)
	require.NoError(t, err)
	return p
}

func newSpace(t *testing.T, params ...*param.Param) *Space {
	t.Helper()
	ctx := context.Background()
	store := paramstore.New()
	require.NoError(t, store.AddParam(ctx, params...))
	s, err := New(ctx, store, WithSeed(1), WithID("test"))
	require.NoError(t, err)
	return s
}

func TestNextDesign_DependentIntegers(t *testing.T) {
	ctx := context.Background()
	s := newSpace(t,
		mustParam(t, "A", "integer", param.WithInclMin(3), param.WithInclMax("B + C")),
		mustParam(t, "B", "integer", param.WithInclMin("C - 5"), param.WithInclMax(10)),
		mustParam(t, "C", "integer", param.WithInclMin(5), param.WithInclMax(7)),
	)

	for range 200 {
		d, err := s.NextDesign(ctx, "")
		require.NoError(t, err)

		get := func(id string) int32 {
			v, ok := d.GetValue(id)
			require.True(t, ok, id)
			return v.(int32)
		}
		a, b, c := get("A"), get("B"), get("C")
		assert.True(t, 3 <= a && a <= b+c, "A=%d B=%d C=%d", a, b, c)
		assert.True(t, 0 <= b && b <= 10, "B=%d", b)
		assert.True(t, 5 <= c && c <= 7, "C=%d", c)
	}
}

func TestSetFixed_BooleanStrings(t *testing.T) {
	ctx := context.Background()
	s := newSpace(t, mustParam(t, "Flag", "boolean"))

	for _, tc := range []struct {
		input    string
		expected bool
	}{
		{input: "true", expected: true},
		{input: "TRUE", expected: true},
		{input: "hello", expected: false},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.NoError(t, s.SetFixed(ctx, "Flag", tc.input))
			for range 10 {
				v, ok, err := s.Next(ctx, "Flag")
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, tc.expected, v)
			}
		})
	}
}

func TestSetFixed_ClearingRestoresVariance(t *testing.T) {
	ctx := context.Background()
	s := newSpace(t, mustParam(t, "X", "long", param.WithInclMin(0), param.WithInclMax(1_000_000)))

	require.NoError(t, s.SetFixed(ctx, "X", "42"))
	for range 10 {
		v, _, err := s.Next(ctx, "X")
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)
	}

	require.NoError(t, s.SetFixed(ctx, "X", nil))
	seen := make(map[any]struct{})
	for range 10 {
		v, _, err := s.Next(ctx, "X")
		require.NoError(t, err)
		seen[v] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)

	assert.ErrorIs(t, s.SetFixed(ctx, "Nope", 1), paramstore.ErrUnknownParam)
}

func TestNext_UnknownID(t *testing.T) {
	s := newSpace(t, mustParam(t, "X", "integer"))
	v, ok, err := s.Next(context.Background(), "Nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestNew_InvalidStore(t *testing.T) {
	ctx := context.Background()
	store := paramstore.New()
	require.NoError(t, store.AddParam(ctx, mustParam(t, "A", "integer", param.WithInclMin("A"))))

	_, err := New(ctx, store)
	assert.ErrorIs(t, err, paramstore.ErrCircularDependency)
}

func TestNew_GeneratesID(t *testing.T) {
	ctx := context.Background()
	store := paramstore.New()
	s, err := New(ctx, store)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID())
}

func TestNextDesign_Structs(t *testing.T) {
	ctx := context.Background()
	x := mustParam(t, "X", "integer", param.WithInclMin(1), param.WithInclMax("N"))
	y := mustParam(t, "Y", "integer", param.WithInclMin("X"), param.WithInclMax("X"))
	shape := mustParam(t, "Shape", "struct", param.WithNested(x, y))
	s := newSpace(t,
		mustParam(t, "N", "integer", param.WithRange("[1,4]")),
		shape,
		mustParam(t, "Total", "integer", param.WithInclMin("Shape.X"), param.WithInclMax("Shape.Y + N")),
	)

	for range 50 {
		d, err := s.NextDesign(ctx, "")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"N", "Shape", "Total"}, d.Keys(), "struct children are reached through the struct")

		st, ok := d.GetValue("Shape")
		require.True(t, ok)
		require.IsType(t, &generator.Struct{}, st)

		sx, _ := d.GetValue("Shape.X")
		sy, _ := d.GetValue("Shape.Y")
		total, _ := d.GetValue("Total")
		n, _ := d.GetValue("N")
		assert.Equal(t, sx, sy)
		assert.GreaterOrEqual(t, total.(int32), sx.(int32))
		assert.LessOrEqual(t, total.(int32), sy.(int32)+n.(int32))
	}

	v, ok, err := s.Next(ctx, "Shape.Y")
	require.NoError(t, err)
	require.True(t, ok)
	assert.IsType(t, int32(0), v)
}

func TestNextDesign_SetValueThroughArray(t *testing.T) {
	ctx := context.Background()
	s := newSpace(t, mustParam(t, "Grid", "double[2][3]", param.WithRange("[0,1]")))

	d, err := s.NextDesign(ctx, "design-1")
	require.NoError(t, err)
	assert.Equal(t, "design-1", d.ID())

	require.NoError(t, d.SetValue("Grid.2.3", 5.0))
	grid, _ := d.GetValue("Grid")
	assert.Equal(t, 5.0, grid.([]any)[1].([]any)[2])
}

func TestNextEmptyDesign(t *testing.T) {
	x := mustParam(t, "X", "integer")
	s := newSpace(t, mustParam(t, "S", "struct", param.WithNested(x)), mustParam(t, "B", "boolean"))

	d := s.NextEmptyDesign("")
	assert.Equal(t, []string{"B", "S", "S.X"}, d.Keys())
	v, ok := d.GetValue("S.X")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestInitializationOrder(t *testing.T) {
	s := newSpace(t,
		mustParam(t, "A", "double", param.WithRange("[0,1]")),
		mustParam(t, "B", "double", param.WithRange("[A,2]")),
	)
	waves, err := s.InitializationOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}, {"B"}}, waves)
	assert.Equal(t, []string{"A", "B"}, s.SupportedParamIDs())
	assert.Equal(t, "test", s.ID())
}

func TestNext_StructChildFeedingStructSibling(t *testing.T) {
	ctx := context.Background()
	x := mustParam(t, "X", "integer", param.WithRange("[0,5]"))
	y := mustParam(t, "Y", "integer", param.WithInclMin("A"), param.WithInclMax(100))
	s := newSpace(t,
		mustParam(t, "S", "struct", param.WithNested(x, y)),
		mustParam(t, "A", "integer", param.WithInclMin(0), param.WithInclMax("S.X")),
	)

	for range 50 {
		v, ok, err := s.Next(ctx, "A")
		require.NoError(t, err)
		require.True(t, ok)
		a := v.(int32)
		assert.True(t, 0 <= a && a <= 5, "A=%d", a)

		d, err := s.NextDesign(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "S"}, d.Keys())
		sx, _ := d.GetValue("S.X")
		sy, _ := d.GetValue("S.Y")
		av, _ := d.GetValue("A")
		assert.LessOrEqual(t, av.(int32), sx.(int32))
		assert.GreaterOrEqual(t, sy.(int32), av.(int32))
	}

	v, ok, err := s.Next(ctx, "S.Y")
	require.NoError(t, err)
	require.True(t, ok)
	assert.LessOrEqual(t, v.(int32), int32(100))
}
