// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file maps declared type strings such as "integer" or "double[3][]"
// onto a Type tag plus the array dimensions.
package param

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the value family of a parameter.
type Type int

const (
	Short Type = iota + 1
	Integer
	Long
	Float
	Double
	Numeric
	Boolean
	Array
	Structural
)

var typeNames = map[Type]string{
	Short:      "short",
	Integer:    "integer",
	Long:       "long",
	Float:      "float",
	Double:     "double",
	Numeric:    "numeric",
	Boolean:    "boolean",
	Array:      "array",
	Structural: "struct",
}

var typeAliases = map[string]Type{
	"short":      Short,
	"int":        Integer,
	"integer":    Integer,
	"long":       Long,
	"float":      Float,
	"double":     Double,
	"numeric":    Numeric,
	"bool":       Boolean,
	"boolean":    Boolean,
	"struct":     Structural,
	"structural": Structural,
	"choice":     Structural,
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsInteger reports whether t is short, integer or long.
func (t Type) IsInteger() bool {
	return t == Short || t == Integer || t == Long
}

// IsFloating reports whether t is float, double or numeric.
func (t Type) IsFloating() bool {
	return t == Float || t == Double || t == Numeric
}

// IsNumeric reports whether t carries numeric ranges.
func (t Type) IsNumeric() bool {
	return t.IsInteger() || t.IsFloating()
}

// ParseType splits a type string into its base type and array sizes. Each
// "[n]" or "[]" suffix adds one dimension; "[]" leaves its size at 0.
func ParseType(spec string) (Type, []int, error) {
	spec = strings.TrimSpace(spec)
	base := spec
	if i := strings.IndexByte(spec, '['); i >= 0 {
		base = spec[:i]
	}

	t, ok := typeAliases[strings.ToLower(strings.TrimSpace(base))]
	if !ok {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidType, spec)
	}

	var sizes []int
	rest := spec[len(base):]
	for rest != "" {
		if rest[0] != '[' {
			return 0, nil, fmt.Errorf("%w: %q: unexpected %q", ErrInvalidType, spec, rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return 0, nil, fmt.Errorf("%w: %q: unterminated dimension", ErrInvalidType, spec)
		}
		size := 0
		if body := strings.TrimSpace(rest[1:end]); body != "" {
			n, err := strconv.Atoi(body)
			if err != nil || n < 0 {
				return 0, nil, fmt.Errorf("%w: %q: invalid size %q", ErrInvalidType, spec, body)
			}
			size = n
		}
		sizes = append(sizes, size)
		rest = rest[end+1:]
	}
	return t, sizes, nil
}
