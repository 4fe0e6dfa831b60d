// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package param

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	testCases := []struct {
		input    string
		expected Type
		sizes    []int
		wantErr  bool
	}{
		{input: "integer", expected: Integer},
		{input: "Double", expected: Double},
		{input: "bool", expected: Boolean},
		{input: "integer[2][]", expected: Integer, sizes: []int{2, 0}},
		{input: "struct[3]", expected: Structural, sizes: []int{3}},
		{input: "decimal", wantErr: true},
		{input: "long[x]", wantErr: true},
		{input: "long[2", wantErr: true},
		{input: "long[2]x", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			typ, sizes, err := ParseType(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, typ)
			assert.Equal(t, tc.sizes, sizes)
		})
	}
}

func TestNew_ConflictingBounds(t *testing.T) {
	_, err := New("X", "integer", WithInclMin(1), WithExclMin(2))
	assert.ErrorIs(t, err, ErrConflictingBounds)

	_, err = New("X", "double", WithRange("[0,1]", "]2,3]"))
	assert.ErrorIs(t, err, ErrConflictingBounds)

	_, err = New("X", "double", WithInclMax(1), WithExclMax("*"))
	assert.NoError(t, err, "an unbounded entry does not conflict")
}

func TestNew_PadsAlternatives(t *testing.T) {
	p, err := New("X", "integer", WithInclMin(0, 10), WithInclMax(5))
	require.NoError(t, err)

	ranges := p.Ranges()
	require.Len(t, ranges, 2)
	assert.Equal(t, "[0,5]", ranges[0].Spec())
	assert.Equal(t, "[10,*]", ranges[1].Spec())
}

func TestNew_NoBoundsHasOneUnboundedRange(t *testing.T) {
	p, err := New("X", "long")
	require.NoError(t, err)
	require.Len(t, p.Ranges(), 1)
	assert.Equal(t, "[*,*]", p.Ranges()[0].Spec())
	assert.Empty(t, p.Dependees())
}

func TestNew_DependentBounds(t *testing.T) {
	p, err := New("C", "double", WithExclMin("A"), WithExclMax("B + Math.sqrt(A)"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, p.Dependees())
	assert.True(t, p.MinExclusive())
	assert.True(t, p.MaxExclusive())
	assert.False(t, p.Ranges()[0].IsResolved())
}

func TestNew_ConstantBoundsFold(t *testing.T) {
	p, err := New("X", "double", WithInclMin("2*3"), WithInclMax(10))
	require.NoError(t, err)

	lo, ok := p.Ranges()[0].Min.Value()
	require.True(t, ok)
	assert.Equal(t, 6.0, lo)
}

func TestNew_InvalidDefinitions(t *testing.T) {
	child, err := New("Y", "integer")
	require.NoError(t, err)

	_, err = New("X", "boolean", WithInclMin(1))
	assert.ErrorIs(t, err, ErrInvalidDefinition)

	_, err = New("X", "integer", WithNested(child))
	assert.ErrorIs(t, err, ErrInvalidDefinition)

	_, err = New("X.Y", "integer")
	assert.Error(t, err)

	_, err = New("X", "integer", WithInclMin("1 +"))
	assert.Error(t, err)
}

func TestNested_ReparentsChildren(t *testing.T) {
	leaf, err := New("Z", "integer", WithInclMin("W"))
	require.NoError(t, err)
	inner, err := New("Inner", "struct", WithNested(leaf))
	require.NoError(t, err)
	x, err := New("X", "double")
	require.NoError(t, err)
	s, err := New("S", "struct", WithNested(inner), WithChoice("alt", x), WithParent("Root"))
	require.NoError(t, err)

	assert.Equal(t, "Root.S", s.ID())
	assert.Equal(t, "Root.S.Inner", inner.ID())
	assert.Equal(t, "Root.S.Inner.Z", leaf.ID())
	assert.Equal(t, "Root.S.X", x.ID())
	assert.Equal(t, []*Param{inner, x}, s.Nested())
	assert.False(t, s.IsTopLevel())
}

func TestDependencies(t *testing.T) {
	y, err := New("Y", "integer", WithInclMin("X"), WithInclMax("Outside"))
	require.NoError(t, err)
	x, err := New("X", "integer")
	require.NoError(t, err)
	s, err := New("S", "struct", WithNested(x, y))
	require.NoError(t, err)

	y.SetRefs(map[string]string{"X": "S.X", "Outside": "Outside"})
	assert.Equal(t, []string{"Outside", "S.X"}, y.Dependencies())
	assert.Equal(t, []string{"Outside"}, s.Dependencies())
}

func TestArray(t *testing.T) {
	p, err := New("Grid", "integer[2][]", WithInclMin(0), WithInclMax("N"))
	require.NoError(t, err)

	assert.Equal(t, Array, p.Type())
	assert.Equal(t, Integer, p.Element().Type())
	assert.Equal(t, []int{2, 0}, p.Sizes())
	assert.Equal(t, []string{"N"}, p.Dependees())

	p.SetRefs(map[string]string{"N": "Dims.N"})
	assert.Equal(t, []string{"Dims.N"}, p.Dependencies())
	assert.Equal(t, "Dims.N", p.Element().Ref("N"))
}

func TestSetFixed(t *testing.T) {
	b, err := New("B", "boolean")
	require.NoError(t, err)

	for _, tc := range []struct {
		input    any
		expected any
	}{
		{input: "true", expected: true},
		{input: "TRUE", expected: true},
		{input: "hello", expected: false},
		{input: "false", expected: false},
		{input: true, expected: true},
	} {
		require.NoError(t, b.SetFixed(tc.input))
		got, ok := b.FixedValue()
		require.True(t, ok)
		assert.Equal(t, tc.expected, got, "input %v", tc.input)
	}

	require.NoError(t, b.SetFixed(nil))
	assert.False(t, b.IsFixed())

	n, err := New("N", "short", WithInclMin(0), WithInclMax(1))
	require.NoError(t, err)
	require.NoError(t, n.SetFixed("2*Math.max(3, 4)"))
	got, _ := n.FixedValue()
	assert.Equal(t, int16(8), got, "fixed values bypass the range")

	assert.Error(t, n.SetFixed("A+1"))

	f, err := New("F", "float", WithFixed("0.5"))
	require.NoError(t, err)
	got, _ = f.FixedValue()
	assert.Equal(t, float32(0.5), got)

	s, err := New("S", "struct")
	require.NoError(t, err)
	require.NoError(t, s.SetFixed("verbatim"))
	got, _ = s.FixedValue()
	assert.Equal(t, "verbatim", got)
}

func TestSetFixed_NumericLimits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		typ      string
		input    any
		expected any
		wantErr  bool
	}{
		{name: "short max", typ: "short", input: "32767", expected: int16(32767)},
		{name: "short min", typ: "short", input: "-32768", expected: int16(-32768)},
		{name: "short truncates inside limits", typ: "short", input: "32767.9", expected: int16(32767)},
		{name: "short overflow", typ: "short", input: "100000", wantErr: true},
		{name: "short underflow", typ: "short", input: "-32769", wantErr: true},
		{name: "integer overflow", typ: "integer", input: "Math.pow(2, 31)", wantErr: true},
		{name: "long overflow", typ: "long", input: "Math.pow(2, 63)", wantErr: true},
		{name: "long from float64", typ: "long", input: 4.0, expected: int64(4)},
		{name: "float overflow", typ: "float", input: "1e39", wantErr: true},
		{name: "double NaN", typ: "double", input: "Math.sqrt(-1)", wantErr: true},
		{name: "double NaN value", typ: "double", input: math.NaN(), wantErr: true},
		{name: "double infinity", typ: "double", input: math.Inf(1), wantErr: true},
		{name: "array leaf overflow", typ: "short[2]", input: 40000.0, wantErr: true},
		{name: "double large", typ: "double", input: "1e300", expected: 1e300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := New("P", tc.typ)
			require.NoError(t, err)

			err = p.SetFixed(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidFixed)
				assert.False(t, p.IsFixed())
				return
			}
			require.NoError(t, err)
			got, ok := p.FixedValue()
			require.True(t, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}
