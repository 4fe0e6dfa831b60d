// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package param defines the parameter model of a design space.
//
// A Param is one named value slot. Numeric params carry one or more range
// alternatives whose endpoints may reference other params through arithmetic
// expressions. Array params wrap an element param with per-dimension sizes.
// Structural params group child params and may declare mutually exclusive
// choice variants.
//
// Bounds are fixed once a Param is constructed. The fixed-value slot is the
// only part that can change afterwards, and setting it never re-checks the
// declared ranges.
package param
