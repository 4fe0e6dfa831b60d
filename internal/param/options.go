// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the functional options accepted by New.
package param

import (
	"fmt"

	"github.com/vk/designspace/internal/interval"
)

// Option configures a Param under construction.
type Option func(*options) error

type bound struct {
	ep        interval.Endpoint
	exclusive bool
}

type options struct {
	mins     []bound
	maxs     []bound
	fixed    any
	hasFixed bool
	parent   string
	nested   []*Param
	choices  []Choice
}

func endpoints(values []any, exclusive bool) ([]bound, error) {
	out := make([]bound, 0, len(values))
	for _, v := range values {
		ep, err := interval.NewEndpoint(v)
		if err != nil {
			return nil, err
		}
		out = append(out, bound{ep: ep, exclusive: exclusive})
	}
	return out, nil
}

func withBounds(min bool, exclusive bool, values []any) Option {
	return func(o *options) error {
		bs, err := endpoints(values, exclusive)
		if err != nil {
			return err
		}
		if min {
			o.mins = append(o.mins, bs...)
		} else {
			o.maxs = append(o.maxs, bs...)
		}
		return nil
	}
}

// WithInclMin adds inclusive lower bounds, one per range alternative. Values
// may be numbers or expression strings.
func WithInclMin(values ...any) Option { return withBounds(true, false, values) }

// WithExclMin adds exclusive lower bounds.
func WithExclMin(values ...any) Option { return withBounds(true, true, values) }

// WithInclMax adds inclusive upper bounds.
func WithInclMax(values ...any) Option { return withBounds(false, false, values) }

// WithExclMax adds exclusive upper bounds.
func WithExclMax(values ...any) Option { return withBounds(false, true, values) }

// WithRange adds one range alternative per interval string, for example
// "[0,10[" or "]A,*]".
func WithRange(specs ...string) Option {
	return func(o *options) error {
		for _, spec := range specs {
			iv, err := interval.FromSpec(spec)
			if err != nil {
				return err
			}
			o.mins = append(o.mins, bound{ep: iv.Min, exclusive: iv.MinExclusive})
			o.maxs = append(o.maxs, bound{ep: iv.Max, exclusive: iv.MaxExclusive})
		}
		return nil
	}
}

// WithFixed sets the initial fixed value.
func WithFixed(v any) Option {
	return func(o *options) error {
		o.fixed, o.hasFixed = v, v != nil
		return nil
	}
}

// WithParent places the param under the given scope ID.
func WithParent(id string) Option {
	return func(o *options) error {
		o.parent = id
		return nil
	}
}

// WithNested adds shared child params to a structural param. The children are
// re-parented under the new param.
func WithNested(children ...*Param) Option {
	return func(o *options) error {
		for _, c := range children {
			if c == nil {
				return fmt.Errorf("%w: nil child", ErrInvalidDefinition)
			}
		}
		o.nested = append(o.nested, children...)
		return nil
	}
}

// WithChoice adds a choice variant to a structural param.
func WithChoice(kind StructuralKind, children ...*Param) Option {
	return func(o *options) error {
		for _, c := range children {
			if c == nil {
				return fmt.Errorf("%w: nil child in choice %q", ErrInvalidDefinition, kind)
			}
		}
		o.choices = append(o.choices, Choice{Kind: kind, Children: children})
		return nil
	}
}
