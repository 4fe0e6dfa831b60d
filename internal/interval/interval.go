// Package interval models numeric ranges whose two sides are independently
// inclusive, exclusive or unbounded, and whose endpoints may be expressions
// over other parameters.
package interval

import (
	"fmt"
	"sort"
	"strings"
)

// Interval is an immutable (min, max) pair.
type Interval struct {
	Min          Endpoint
	Max          Endpoint
	MinExclusive bool
	MaxExclusive bool
}

// New builds an interval. An unbounded side is always treated as inclusive.
func New(min, max Endpoint, minExclusive, maxExclusive bool) Interval {
	return Interval{
		Min:          min,
		Max:          max,
		MinExclusive: minExclusive && !min.IsUnbounded(),
		MaxExclusive: maxExclusive && !max.IsUnbounded(),
	}
}

// FromSpec parses an interval string such as "[1,10[" or "]0,A+1]".
func FromSpec(s string) (Interval, error) {
	inclMin, exclMin, inclMax, exclMax, err := Parse(s)
	if err != nil {
		return Interval{}, err
	}
	min, minExcl := inclMin, false
	if !exclMin.IsUnbounded() {
		min, minExcl = exclMin, true
	}
	max, maxExcl := inclMax, false
	if !exclMax.IsUnbounded() {
		max, maxExcl = exclMax, true
	}
	return New(min, max, minExcl, maxExcl), nil
}

// Parse splits an interval string into its four possible endpoints. Exactly
// one of inclMin/exclMin and one of inclMax/exclMax can be bounded; an
// unbounded side is reported through the inclusive slot.
func Parse(s string) (inclMin, exclMin, inclMax, exclMax Endpoint, err error) {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return inclMin, exclMin, inclMax, exclMax, fmt.Errorf("invalid interval %q: too short", s)
	}
	open, close := s[0], s[len(s)-1]
	if (open != '[' && open != ']') || (close != '[' && close != ']') {
		return inclMin, exclMin, inclMax, exclMax, fmt.Errorf("invalid interval %q: must start and end with '[' or ']'", s)
	}

	lo, hi, err := splitTopLevel(s[1 : len(s)-1])
	if err != nil {
		return inclMin, exclMin, inclMax, exclMax, fmt.Errorf("invalid interval %q: %w", s, err)
	}

	min, err := ParseEndpoint(lo)
	if err != nil {
		return inclMin, exclMin, inclMax, exclMax, err
	}
	max, err := ParseEndpoint(hi)
	if err != nil {
		return inclMin, exclMin, inclMax, exclMax, err
	}

	if open == ']' && !min.IsUnbounded() {
		exclMin = min
	} else {
		inclMin = min
	}
	if close == '[' && !max.IsUnbounded() {
		exclMax = max
	} else {
		inclMax = max
	}
	return inclMin, exclMin, inclMax, exclMax, nil
}

// splitTopLevel splits "lo,hi" on the single comma outside parentheses.
func splitTopLevel(body string) (string, string, error) {
	depth, split := 0, -1
	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				if split >= 0 {
					return "", "", fmt.Errorf("more than one separator")
				}
				split = i
			}
		}
	}
	if split < 0 {
		return "", "", fmt.Errorf("missing ',' separator")
	}
	lo, hi := strings.TrimSpace(body[:split]), strings.TrimSpace(body[split+1:])
	if lo == "" || hi == "" {
		return "", "", fmt.Errorf("empty endpoint")
	}
	return lo, hi, nil
}

// MakeIntervalSpec is the inverse of Parse.
func MakeIntervalSpec(inclMin, exclMin, inclMax, exclMax Endpoint) string {
	var sb strings.Builder
	if !exclMin.IsUnbounded() {
		sb.WriteString("]" + exclMin.String())
	} else {
		sb.WriteString("[" + inclMin.String())
	}
	sb.WriteString(",")
	if !exclMax.IsUnbounded() {
		sb.WriteString(exclMax.String() + "[")
	} else {
		sb.WriteString(inclMax.String() + "]")
	}
	return sb.String()
}

// Spec returns the canonical interval string.
func (i Interval) Spec() string {
	var inclMin, exclMin, inclMax, exclMax Endpoint
	if i.MinExclusive {
		exclMin = i.Min
	} else {
		inclMin = i.Min
	}
	if i.MaxExclusive {
		exclMax = i.Max
	} else {
		inclMax = i.Max
	}
	return MakeIntervalSpec(inclMin, exclMin, inclMax, exclMax)
}

// String implements fmt.Stringer.
func (i Interval) String() string {
	return i.Spec()
}

// IsResolved reports whether both endpoints are concrete or unbounded.
func (i Interval) IsResolved() bool {
	return i.Min.IsResolved() && i.Max.IsResolved()
}

// Dependencies returns the sorted union of identifiers referenced by deferred
// endpoints.
func (i Interval) Dependencies() []string {
	seen := make(map[string]struct{})
	for _, d := range i.Min.Dependencies() {
		seen[d] = struct{}{}
	}
	for _, d := range i.Max.Dependencies() {
		seen[d] = struct{}{}
	}
	deps := make([]string, 0, len(seen))
	for d := range seen {
		deps = append(deps, d)
	}
	sort.Strings(deps)
	return deps
}

// Contains tests x against both sides. An unbounded side always passes; a
// side that is still deferred never does.
func (i Interval) Contains(x float64) bool {
	if !i.Min.IsUnbounded() {
		min, ok := i.Min.Value()
		if !ok || x < min || (i.MinExclusive && x == min) {
			return false
		}
	}
	if !i.Max.IsUnbounded() {
		max, ok := i.Max.Value()
		if !ok || x > max || (i.MaxExclusive && x == max) {
			return false
		}
	}
	return true
}

// GetUpdated returns a copy of the interval with the given sides replaced by
// concrete numbers. A nil argument keeps the existing side.
func (i Interval) GetUpdated(min, max *float64) Interval {
	updated := i
	if min != nil {
		updated.Min = Number(*min)
	}
	if max != nil {
		updated.Max = Number(*max)
	}
	return updated
}

// Resolve evaluates every deferred endpoint against vars.
func (i Interval) Resolve(vars map[string]float64) (Interval, error) {
	min, err := i.Min.Resolve(vars)
	if err != nil {
		return Interval{}, fmt.Errorf("lower bound: %w", err)
	}
	max, err := i.Max.Resolve(vars)
	if err != nil {
		return Interval{}, fmt.Errorf("upper bound: %w", err)
	}
	resolved := i
	resolved.Min, resolved.Max = min, max
	return resolved, nil
}
