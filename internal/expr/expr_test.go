package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDependencies(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		src      string
		expected []string
	}{
		{name: "literal only", src: "42", expected: []string{}},
		{name: "single reference", src: "A + 1", expected: []string{"A"}},
		{name: "deduplicated and sorted", src: "C * B - C / (B + A)", expected: []string{"A", "B", "C"}},
		{name: "hierarchical reference", src: "Outer.Inner - 2", expected: []string{"Outer.Inner"}},
		{name: "math members dropped", src: "Math.sqrt(X) + Math.PI", expected: []string{"X"}},
		{name: "scientific literal", src: "1e3 * Y", expected: []string{"Y"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps, err := ParseDependencies(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, deps)
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	params := map[string]float64{"A": 3, "B": 4, "Outer.Inner": 10, "Outer.InnerLonger": 1}

	testCases := []struct {
		name     string
		src      string
		expected float64
	}{
		{name: "precedence", src: "1 + 2 * 3", expected: 7},
		{name: "parentheses", src: "(1 + 2) * 3", expected: 9},
		{name: "unary minus", src: "-A + -(-B)", expected: 1},
		{name: "left associative division", src: "16 / 4 / 2", expected: 2},
		{name: "dotted identifiers do not collide", src: "Outer.InnerLonger + Outer.Inner", expected: 11},
		{name: "math function", src: "Math.hypot(A, B)", expected: 5},
		{name: "variadic max", src: "Math.max(A, B, 2)", expected: 4},
		{name: "math constant", src: "Math.PI * 2", expected: 2 * math.Pi},
		{name: "fraction literal", src: ".5 + 0.25", expected: 0.75},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Evaluate(tc.src, params)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, v, 1e-12)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		src  string
		err  error
	}{
		{name: "unknown identifier", src: "A + Missing", err: ErrUnknownIdentifier},
		{name: "unknown math member", src: "Math.nope(1)", err: ErrUnknownFunction},
		{name: "non math call", src: "exec(1)", err: ErrUnknownFunction},
		{name: "wrong arity", src: "Math.pow(2)", err: ErrSyntax},
		{name: "dangling operator", src: "1 +", err: ErrSyntax},
		{name: "unbalanced parenthesis", src: "(1 + 2", err: ErrSyntax},
		{name: "illegal character", src: "1 ; 2", err: ErrSyntax},
		{name: "trailing dot", src: "A. + 1", err: ErrSyntax},
		{name: "empty", src: "  ", err: ErrSyntax},
		{name: "division by zero", src: "A / (B - 4)", err: ErrDivisionByZero},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.src, map[string]float64{"A": 1, "B": 4})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestEvaluate_DoesNotMutateParams(t *testing.T) {
	params := map[string]float64{"A": 1}
	_, err := Evaluate("A * 2", params)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 1}, params)
}

func TestCompile(t *testing.T) {
	e, err := Compile("B - C + Math.abs(C)")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, e.Dependencies())
	assert.False(t, e.IsConstant())
	assert.Equal(t, "B - C + Math.abs(C)", e.String())

	v, err := e.Eval(map[string]float64{"B": 2, "C": -3})
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)

	c, err := Compile("Math.floor(7.9)")
	require.NoError(t, err)
	assert.True(t, c.IsConstant())
}
