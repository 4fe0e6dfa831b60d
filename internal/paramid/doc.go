// internal/paramid/doc.go

/*
Package paramid provides a structured representation for parameter
identifiers and the scope search used to turn relative references into
absolute IDs.

The format is a dot-separated sequence of segments, e.g. `Point.X` or
`Grid.2.1`. A purely numeric segment addresses a 1-based array element;
every other segment is a parameter name.
*/
package paramid
