package design

import "errors"

var (
	// ErrReadOnly is returned when writing to a read-only design.
	ErrReadOnly = errors.New("design is read-only")
	// ErrUnknownParam is returned when writing an ID the design does not
	// support.
	ErrUnknownParam = errors.New("unknown parameter")
	// ErrInvalidPath is returned when an element or child path does not
	// address a value.
	ErrInvalidPath = errors.New("invalid value path")
)
