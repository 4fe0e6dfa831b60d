package paramstore

import "errors"

var (
	// ErrFinalized is returned when params are added to a finalized store.
	ErrFinalized = errors.New("parameter store is finalized")
	// ErrDuplicateParam is returned when a param ID is registered twice.
	ErrDuplicateParam = errors.New("duplicate parameter")
	// ErrUnresolvedDependency is returned when a bound references an ID that
	// no scope search can find.
	ErrUnresolvedDependency = errors.New("unresolved dependency")
	// ErrEmptyRange is returned when an independent param cannot produce a
	// value.
	ErrEmptyRange = errors.New("empty value range")
	// ErrCircularDependency is returned when a param depends on itself.
	ErrCircularDependency = errors.New("circular dependency")
	// ErrUnknownParam is returned for operations on an unregistered ID.
	ErrUnknownParam = errors.New("unknown parameter")
)
