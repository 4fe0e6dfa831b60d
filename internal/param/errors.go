// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package param

import "errors"

var (
	// ErrConflictingBounds is returned when a bound position is declared both
	// inclusive and exclusive.
	ErrConflictingBounds = errors.New("conflicting inclusive and exclusive bounds")
	// ErrInvalidType is returned for an unknown or malformed type string.
	ErrInvalidType = errors.New("invalid parameter type")
	// ErrInvalidDefinition is returned for option combinations the type
	// cannot carry, like nested params on a scalar.
	ErrInvalidDefinition = errors.New("invalid parameter definition")
	// ErrInvalidFixed is returned for a fixed value the param's kind cannot
	// hold, like NaN or an integer outside the type's limits.
	ErrInvalidFixed = errors.New("invalid fixed value")
)
