// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package param

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vk/designspace/internal/interval"
	"github.com/vk/designspace/internal/paramid"
)

// StructuralKind names a choice variant of a structural param.
type StructuralKind string

// Choice is one mutually exclusive variant of a structural param.
type Choice struct {
	Kind     StructuralKind
	Children []*Param
}

// Param is the definition of one value slot.
type Param struct {
	name   string
	parent string
	typ    Type

	// Arrays only.
	elem  *Param
	sizes []int

	ranges       []interval.Interval
	minExclusive bool
	maxExclusive bool
	dependees    []string

	// Structural only.
	children []*Param
	choices  []Choice

	mu       sync.RWMutex
	fixed    any
	hasFixed bool
	refs     map[string]string
}

// New constructs a param from a local name, a type string and options.
func New(name, typeSpec string, opts ...Option) (*Param, error) {
	if addr, err := paramid.Parse(name); err != nil || len(addr.Path) != 1 {
		return nil, fmt.Errorf("invalid parameter name %q: must be a single path segment", name)
	}
	base, sizes, err := ParseType(typeSpec)
	if err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
	}

	leaf, err := newLeaf(name, base, &o)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", name, err)
	}

	p := leaf
	if len(sizes) > 0 {
		p = &Param{name: name, typ: Array, elem: leaf, sizes: sizes}
	}
	p.setParent(o.parent)

	if o.hasFixed {
		if err := p.SetFixed(o.fixed); err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
	}
	return p, nil
}

func newLeaf(name string, t Type, o *options) (*Param, error) {
	p := &Param{name: name, typ: t}

	if !t.IsNumeric() && (hasBounded(o.mins) || hasBounded(o.maxs)) {
		return nil, fmt.Errorf("%w: %s parameters take no bounds", ErrInvalidDefinition, t)
	}
	if t != Structural && (len(o.nested) > 0 || len(o.choices) > 0) {
		return nil, fmt.Errorf("%w: only structural parameters take nested parameters", ErrInvalidDefinition)
	}

	minExcl, err := exclusivity(o.mins, "lower")
	if err != nil {
		return nil, err
	}
	maxExcl, err := exclusivity(o.maxs, "upper")
	if err != nil {
		return nil, err
	}
	p.minExclusive, p.maxExclusive = minExcl, maxExcl

	n := max(len(o.mins), len(o.maxs), 1)
	p.ranges = make([]interval.Interval, n)
	for i := range n {
		var lo, hi interval.Endpoint
		if i < len(o.mins) {
			lo = o.mins[i].ep
		}
		if i < len(o.maxs) {
			hi = o.maxs[i].ep
		}
		p.ranges[i] = interval.New(lo, hi, minExcl, maxExcl)
	}

	seen := make(map[string]struct{})
	for _, r := range p.ranges {
		for _, d := range r.Dependencies() {
			seen[d] = struct{}{}
		}
	}
	p.dependees = sortedSet(seen)

	p.children = o.nested
	p.choices = o.choices
	seenKinds := make(map[StructuralKind]struct{}, len(o.choices))
	for _, c := range o.choices {
		if _, dup := seenKinds[c.Kind]; dup {
			return nil, fmt.Errorf("%w: duplicate choice %q", ErrInvalidDefinition, c.Kind)
		}
		seenKinds[c.Kind] = struct{}{}
	}
	return p, nil
}

func hasBounded(bs []bound) bool {
	for _, b := range bs {
		if !b.ep.IsUnbounded() {
			return true
		}
	}
	return false
}

// exclusivity returns the exclusivity shared by every bounded entry on one
// side, failing when inclusive and exclusive entries are mixed.
func exclusivity(bs []bound, side string) (bool, error) {
	var incl, excl bool
	for _, b := range bs {
		if b.ep.IsUnbounded() {
			continue
		}
		if b.exclusive {
			excl = true
		} else {
			incl = true
		}
	}
	if incl && excl {
		return false, fmt.Errorf("%w: %s bound", ErrConflictingBounds, side)
	}
	return excl, nil
}

func sortedSet(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// setParent moves the param, and recursively its descendants, under parent.
func (p *Param) setParent(parent string) {
	p.parent = parent
	if p.elem != nil {
		p.elem.setParent(parent)
		return
	}
	id := p.ID()
	for _, c := range p.children {
		c.setParent(id)
	}
	for _, ch := range p.choices {
		for _, c := range ch.Children {
			c.setParent(id)
		}
	}
}

// Name returns the local name.
func (p *Param) Name() string { return p.name }

// Parent returns the enclosing scope ID, or "" at the top level.
func (p *Param) Parent() string { return p.parent }

// ID returns the absolute, dot-separated ID.
func (p *Param) ID() string { return paramid.Join(p.parent, p.name) }

// IsTopLevel reports whether the param has no enclosing scope.
func (p *Param) IsTopLevel() bool { return p.parent == "" }

// Type returns the type tag.
func (p *Param) Type() Type { return p.typ }

// Element returns the element param of an array, or nil.
func (p *Param) Element() *Param { return p.elem }

// Sizes returns the declared size per array dimension, outermost first.
func (p *Param) Sizes() []int {
	return append([]int(nil), p.sizes...)
}

// Leaf returns the innermost non-array param.
func (p *Param) Leaf() *Param {
	if p.elem != nil {
		return p.elem
	}
	return p
}

// Ranges returns the range alternatives. There is always at least one.
func (p *Param) Ranges() []interval.Interval {
	leaf := p.Leaf()
	return append([]interval.Interval(nil), leaf.ranges...)
}

// MinExclusive reports whether lower bounds are exclusive.
func (p *Param) MinExclusive() bool { return p.Leaf().minExclusive }

// MaxExclusive reports whether upper bounds are exclusive.
func (p *Param) MaxExclusive() bool { return p.Leaf().maxExclusive }

// Children returns the shared children of a structural param.
func (p *Param) Children() []*Param {
	return append([]*Param(nil), p.Leaf().children...)
}

// Choices returns the choice variants of a structural param.
func (p *Param) Choices() []Choice {
	return append([]Choice(nil), p.Leaf().choices...)
}

// Nested returns every direct child, shared ones first and then the children
// of each choice in declaration order.
func (p *Param) Nested() []*Param {
	leaf := p.Leaf()
	out := append([]*Param(nil), leaf.children...)
	for _, ch := range leaf.choices {
		out = append(out, ch.Children...)
	}
	return out
}

// Dependees returns the identifiers referenced by the bound expressions, as
// written. An array reports the dependees of its element.
func (p *Param) Dependees() []string {
	return append([]string(nil), p.Leaf().dependees...)
}

// SetRefs installs the mapping from written identifiers to absolute IDs.
func (p *Param) SetRefs(refs map[string]string) {
	p.mu.Lock()
	p.refs = refs
	p.mu.Unlock()
	if p.elem != nil {
		p.elem.SetRefs(refs)
	}
}

// Refs returns the installed mapping, or nil when none is installed.
func (p *Param) Refs() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.refs
}

// Ref returns the absolute ID for a written identifier. Without an installed
// mapping the identifier is returned as is.
func (p *Param) Ref(token string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if abs, ok := p.refs[token]; ok {
		return abs
	}
	return token
}

// Dependencies returns the absolute IDs this param needs before it can be
// generated. For a structural param these are the dependencies of its
// descendants that point outside its own subtree.
func (p *Param) Dependencies() []string {
	leaf := p.Leaf()
	if leaf.typ != Structural {
		deps := make(map[string]struct{}, len(leaf.dependees))
		for _, d := range leaf.dependees {
			deps[p.Ref(d)] = struct{}{}
		}
		return sortedSet(deps)
	}

	id := p.ID()
	deps := make(map[string]struct{})
	for _, c := range p.Nested() {
		for _, d := range c.Dependencies() {
			if !paramid.IsWithin(d, id) {
				deps[d] = struct{}{}
			}
		}
	}
	return sortedSet(deps)
}

func (p *Param) String() string {
	return fmt.Sprintf("%s(%s)", p.ID(), p.typ)
}
