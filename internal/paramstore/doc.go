// Package paramstore holds the params of one design space.
//
// A Store accepts params until it is finalized. Finalize resolves every
// relative reference to an absolute param ID, rejects independent params
// whose range is empty, detects circular dependencies and partitions the
// params into initialization waves. After that the set of params is frozen;
// only fixed values may still change.
package paramstore
