package expr

import "errors"

var (
	// ErrSyntax is returned when expression text cannot be parsed.
	ErrSyntax = errors.New("expression syntax error")
	// ErrUnknownIdentifier is returned when an expression references a name
	// that is neither a Math member nor a supplied parameter value.
	ErrUnknownIdentifier = errors.New("unknown identifier")
	// ErrUnknownFunction is returned for Math members outside the allow-list.
	ErrUnknownFunction = errors.New("unknown math function")
	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")
)
