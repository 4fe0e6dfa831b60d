// Package expr implements the sandboxed arithmetic language used by parameter
// bounds.
//
// An expression is a small arithmetic formula over numeric literals, parameter
// references and an allow-listed math library:
//
//	A + 1
//	(Outer.Width - 2) * Math.sqrt(B)
//	-Math.PI / 2
//
// Identifiers may contain dots so hierarchical parameter IDs can be referenced
// directly. Every identifier that starts with the Math namespace is resolved
// against the built-in function and constant table; every other identifier must
// be supplied by the caller when the expression is evaluated.
//
// The language has no assignment, no loops and no way to call anything outside
// the table in functions.go, so untrusted expression text can be evaluated
// safely.
package expr
