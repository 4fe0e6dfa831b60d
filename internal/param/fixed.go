// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file implements the fixed-value slot. A fixed value replaces random
// generation entirely and is never checked against the declared ranges.
package param

import (
	"fmt"
	"math"
	"strings"

	"github.com/vk/designspace/internal/expr"
)

// IsFixed reports whether a fixed value is set.
func (p *Param) IsFixed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.hasFixed
}

// FixedValue returns the fixed value and whether one is set.
func (p *Param) FixedValue() (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.fixed, p.hasFixed
}

// SetFixed sets or, with nil, clears the fixed value.
//
// A string on a boolean param becomes true when it equals "true" in any case.
// A string on a numeric param is evaluated as a constant expression and
// converted to the param's Go kind. Other values are stored as given.
func (p *Param) SetFixed(v any) error {
	if v == nil {
		p.mu.Lock()
		p.fixed, p.hasFixed = nil, false
		p.mu.Unlock()
		return nil
	}

	converted, err := convertFixed(p.Leaf().typ, v)
	if err != nil {
		return fmt.Errorf("fixing %s: %w", p.ID(), err)
	}

	p.mu.Lock()
	p.fixed, p.hasFixed = converted, true
	p.mu.Unlock()
	return nil
}

func convertFixed(t Type, v any) (any, error) {
	switch s := v.(type) {
	case string:
		switch {
		case t == Boolean:
			return strings.EqualFold(strings.TrimSpace(s), "true"), nil
		case t.IsNumeric():
			f, err := expr.Evaluate(s, nil)
			if err != nil {
				return nil, err
			}
			return CheckedConvert(t, f)
		}
	case float64:
		if t.IsNumeric() {
			return CheckedConvert(t, s)
		}
	}
	return v, nil
}

// CheckedConvert is Convert for values from outside the generator. It
// rejects non-finite numbers and numbers beyond the limits of t.
func CheckedConvert(t Type, f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v is not a finite number", ErrInvalidFixed, f)
	}
	var lo, hi float64
	switch t {
	case Short:
		lo, hi = math.MinInt16, math.MaxInt16
	case Integer:
		lo, hi = math.MinInt32, math.MaxInt32
	case Long:
		// float64(MaxInt64) rounds up to 2^63, which int64 cannot hold.
		lo, hi = math.MinInt64, math.Nextafter(math.MaxInt64, 0)
	case Float:
		lo, hi = -math.MaxFloat32, math.MaxFloat32
	default:
		return f, nil
	}
	// Integer kinds truncate toward zero, so the truncated value is checked.
	g := f
	if t != Float {
		g = math.Trunc(f)
	}
	if g < lo || g > hi {
		return nil, fmt.Errorf("%w: %v is outside the %s range", ErrInvalidFixed, f, t)
	}
	return Convert(t, f), nil
}

// Convert turns a float64 into the Go kind of a numeric type. Integer kinds
// truncate toward zero.
func Convert(t Type, f float64) any {
	switch t {
	case Short:
		return int16(f)
	case Integer:
		return int32(f)
	case Long:
		return int64(f)
	case Float:
		return float32(f)
	default:
		return f
	}
}
