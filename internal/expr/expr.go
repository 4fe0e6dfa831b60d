package expr

import (
	"fmt"
	"sort"
	"strings"
)

// Expression is a compiled arithmetic expression. It is immutable and safe to
// evaluate concurrently.
type Expression struct {
	src  string
	root node
	deps []string
}

// Compile parses src into an Expression.
func Compile(src string) (*Expression, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens, deps: make(map[string]struct{})}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %s at offset %d", ErrSyntax, t.kind, t.pos)
	}

	return &Expression{src: src, root: root, deps: sortedKeys(p.deps)}, nil
}

// String returns the source text the expression was compiled from.
func (e *Expression) String() string {
	return e.src
}

// Dependencies returns the sorted set of parameter identifiers referenced by
// the expression. The returned slice must not be modified.
func (e *Expression) Dependencies() []string {
	return e.deps
}

// IsConstant reports whether the expression references no parameters.
func (e *Expression) IsConstant() bool {
	return len(e.deps) == 0
}

// Eval evaluates the expression with the given parameter values.
func (e *Expression) Eval(vars map[string]float64) (float64, error) {
	v, err := e.root.eval(vars)
	if err != nil {
		return 0, fmt.Errorf("evaluating %q: %w", e.src, err)
	}
	return v, nil
}

// ParseDependencies extracts the identifiers referenced by src. Numeric
// literals and members of the Math namespace are discarded; the result is a
// sorted set.
func ParseDependencies(src string) ([]string, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, t := range tokens {
		if t.kind != tokIdent || IsNamespaced(t.text) {
			continue
		}
		seen[t.text] = struct{}{}
	}
	return sortedKeys(seen), nil
}

// Evaluate compiles and evaluates src in a namespace containing only the math
// library and params.
func Evaluate(src string, params map[string]float64) (float64, error) {
	e, err := Compile(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(params)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
