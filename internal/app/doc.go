// Package app runs designgen. It loads a parameter space, applies fixed
// values, and writes generated designs, independent of any entrypoint.
package app
