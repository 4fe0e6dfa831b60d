package config

import "fmt"

// Model is the unified, format-agnostic representation of one design space.
type Model struct {
	// Params holds the top-level definitions in declaration order.
	Params []*ParamDefinition
}

// ParamDefinition is the format-agnostic representation of one parameter.
//
// Bound lists hold one entry per range alternative. Entries are float64
// numbers or expression strings. Fixed is nil, a bool, a float64 or a string.
type ParamDefinition struct {
	Name    string
	Type    string
	InclMin []any
	ExclMin []any
	InclMax []any
	ExclMax []any
	Ranges  []string
	Fixed   any
	Nested  []*ParamDefinition
	Choices []*ChoiceDefinition
	// Source describes where the definition was declared, for error messages.
	Source string
}

// ChoiceDefinition is one variant of a structural parameter.
type ChoiceDefinition struct {
	Kind   string
	Params []*ParamDefinition
}

// Walk calls fn for every definition in the model, parents before children.
func (m *Model) Walk(fn func(def *ParamDefinition)) {
	var walk func(defs []*ParamDefinition)
	walk = func(defs []*ParamDefinition) {
		for _, d := range defs {
			fn(d)
			walk(d.Nested)
			for _, c := range d.Choices {
				walk(c.Params)
			}
		}
	}
	walk(m.Params)
}

// Merge appends the definitions of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Params = append(m.Params, other.Params...)
}

func (d *ParamDefinition) String() string {
	if d.Source == "" {
		return fmt.Sprintf("%s (%s)", d.Name, d.Type)
	}
	return fmt.Sprintf("%s (%s) at %s", d.Name, d.Type, d.Source)
}
