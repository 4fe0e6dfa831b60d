package generator

import "errors"

var (
	// ErrInvalidRange is returned when the effective range of a param is empty.
	ErrInvalidRange = errors.New("invalid value range")
	// ErrMissingDependency is returned when a bound references a param whose
	// value has not been generated.
	ErrMissingDependency = errors.New("missing dependency value")
	// ErrNotNumeric is returned when a bound references a non-numeric value.
	ErrNotNumeric = errors.New("dependency value is not numeric")
)
