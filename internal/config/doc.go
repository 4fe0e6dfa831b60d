// Package config defines the format-agnostic model of parameter definitions,
// along with the Loader interface for reading it from various sources.
//
// The `config.Model` is the single source of truth for the `builder`
// package. Concrete loaders, such as the HCL one, live in separate packages.
package config
