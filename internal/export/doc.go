// Package export renders designs as HCL, JSON or YAML.
//
// Every design becomes one record keyed by its ID. Values are grouped by
// parameter path, so a value stored under "Shape.Scale" appears as the
// "Scale" attribute of a "Shape" object. Structural values become objects
// with their selected choice under the "_choice" key, arrays become lists and
// empty placeholders become null.
package export
