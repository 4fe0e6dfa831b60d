package generator

import (
	"fmt"
	"maps"
	"math/rand/v2"

	"github.com/vk/designspace/internal/param"
	"github.com/vk/designspace/internal/paramid"
)

// Generator draws values for params from an injected random source.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator using rng. A nil rng is replaced by a randomly
// seeded source.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = NewRand(rand.Uint64())
	}
	return &Generator{rng: rng}
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: NewRand(seed)}
}

// NextValue generates one value for p. dep maps absolute param IDs to values
// that p's bounds may reference. dep is never modified.
//
// A fixed value is returned as is for every type except arrays, whose leaves
// all share the fixed value.
func (g *Generator) NextValue(p *param.Param, dep map[string]any) (any, error) {
	if p.Type() == param.Array {
		return g.NextArray(p, nil, dep)
	}
	if v, ok := p.FixedValue(); ok {
		return v, nil
	}

	switch t := p.Type(); {
	case t == param.Boolean:
		return g.rng.IntN(2) == 1, nil
	case t == param.Structural:
		local := make(map[string]any, len(dep))
		maps.Copy(local, dep)
		s, err := g.nextStruct(p, local, map[string]bool{})
		if err != nil {
			return nil, err
		}
		return s, nil
	case t.IsNumeric():
		return g.nextNumber(p, dep)
	default:
		return nil, fmt.Errorf("parameter %s has unsupported type %s", p.ID(), t)
	}
}

// IsValid reports whether p can currently produce a value.
func (g *Generator) IsValid(p *param.Param, dep map[string]any) (bool, error) {
	return IsValid(p, dep)
}

// IsValid is the dry-run range check. Numeric params are valid when every
// range alternative is non-empty; other families are always valid.
func IsValid(p *param.Param, dep map[string]any) (bool, error) {
	leaf := p.Leaf()
	if !leaf.Type().IsNumeric() {
		return true, nil
	}
	ranges, err := resolveRanges(p, dep)
	if err != nil {
		return false, err
	}
	for _, r := range ranges {
		if !rangeValid(leaf.Type(), r) {
			return false, nil
		}
	}
	return true, nil
}

func (g *Generator) nextNumber(p *param.Param, dep map[string]any) (any, error) {
	t := p.Leaf().Type()
	ranges, err := resolveRanges(p, dep)
	if err != nil {
		return nil, err
	}
	for _, r := range ranges {
		if !rangeValid(t, r) {
			return nil, fmt.Errorf("%w: %s has empty range %s", ErrInvalidRange, p.ID(), r.Spec())
		}
	}

	r := ranges[0]
	if len(ranges) > 1 {
		r = ranges[g.rng.IntN(len(ranges))]
	}
	if t.IsInteger() {
		return g.drawInt(t, intBounds(t, r)), nil
	}
	return g.drawFloat(t, floatBounds(t, r)), nil
}

// NextArray builds nested []any values, outermost dimension first. A nil
// sizes uses the declared sizes; a size of 0 yields one element.
func (g *Generator) NextArray(p *param.Param, sizes []int, dep map[string]any) (any, error) {
	if sizes == nil {
		sizes = p.Sizes()
	}
	fixed, isFixed := p.FixedValue()
	elem := p.Element()
	if elem == nil {
		elem = p
	}

	var fill func(dims []int) (any, error)
	fill = func(dims []int) (any, error) {
		if len(dims) == 0 {
			if isFixed {
				return fixed, nil
			}
			return g.NextValue(elem, dep)
		}
		n := max(dims[0], 1)
		out := make([]any, n)
		for i := range out {
			v, err := fill(dims[1:])
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	return fill(sizes)
}

// nextStruct generates the children of p into local, which holds values by
// absolute ID and receives every generated descendant.
func (g *Generator) nextStruct(p *param.Param, local map[string]any, visiting map[string]bool) (*Struct, error) {
	children := p.Children()
	s := &Struct{Values: make(map[string]any, len(children))}
	if choices := p.Choices(); len(choices) > 0 {
		choice := choices[g.rng.IntN(len(choices))]
		s.Choice = choice.Kind
		children = append(children, choice.Children...)
	}

	scope := p.ID()
	var ensure func(c *param.Param) error
	owner := func(id string) *param.Param {
		for _, c := range children {
			if paramid.IsWithin(id, c.ID()) {
				return c
			}
		}
		return nil
	}
	ensure = func(c *param.Param) error {
		id := c.ID()
		if _, done := local[id]; done {
			return nil
		}
		if visiting[id] {
			return fmt.Errorf("%w: %s depends on itself within %s", ErrMissingDependency, id, scope)
		}
		visiting[id] = true
		defer delete(visiting, id)

		for _, d := range c.Dependencies() {
			if _, done := local[d]; done || !paramid.IsWithin(d, scope) {
				continue
			}
			if sibling := owner(d); sibling != nil && sibling != c {
				if err := ensure(sibling); err != nil {
					return err
				}
			}
		}

		var v any
		var err error
		if _, fixed := c.FixedValue(); c.Type() == param.Structural && !fixed {
			v, err = g.nextStruct(c, local, visiting)
		} else {
			v, err = g.NextValue(c, local)
		}
		if err != nil {
			return err
		}
		local[id] = v
		return nil
	}

	for _, c := range children {
		if err := ensure(c); err != nil {
			return nil, err
		}
		s.Values[c.Name()] = local[c.ID()]
		s.Order = append(s.Order, c.Name())
	}
	return s, nil
}
