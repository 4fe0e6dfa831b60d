// Package generator produces concrete values for params.
//
// One strategy exists per value family. Integer types draw uniformly from the
// closed range left after exclusive bounds are tightened by one. Floating
// types draw uniformly between their bounds and never return an exclusive
// endpoint. Booleans are a fair coin. Arrays and structural params are built
// recursively from their element and children.
//
// Bounds that reference other params are evaluated against a map of already
// generated values keyed by absolute param ID. A Generator owns a *rand.Rand
// and is not safe for concurrent use.
package generator
