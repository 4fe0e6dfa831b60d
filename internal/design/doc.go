// Package design holds generated parameter values.
//
// A Design maps parameter IDs to values. Lookups accept element and child
// paths: "Grid.2.1" reads the first element of the second row of the array
// stored under "Grid", and "Shape.Radius" reads a child of the structural
// value stored under "Shape". Writes through such paths modify the stored
// array or struct in place, so the enclosing value observes them.
//
// Designs can extend other designs. A lookup that misses locally falls back
// to the extending designs in the order they were added.
package design
