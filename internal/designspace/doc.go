// Package designspace generates designs from a finalized parameter store.
//
// Next resolves one param together with everything it transitively depends
// on, generating each dependency at most once per call. Nothing is cached
// between calls. Params nested in a structural param take their value from
// the generated struct whenever the struct is resolved in the same call, so
// a design never holds two different values for one child.
package designspace
