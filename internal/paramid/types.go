// internal/paramid/types.go
package paramid

// Separator joins the segments of a hierarchical parameter ID.
const Separator = "."

// Segment represents a single component of an ID path: either a name or a
// 1-based array element index.
type Segment struct {
	Name  string
	Index int // 0 indicates a name segment.
}

// NewSegment creates a named path segment.
func NewSegment(name string) Segment {
	return Segment{Name: name}
}

// NewIndexSegment creates an array element segment. index is 1-based.
func NewIndexSegment(index int) Segment {
	return Segment{Index: index}
}

// IsIndex returns true if the segment addresses an array element.
func (s Segment) IsIndex() bool {
	return s.Index > 0
}

// Address is the structured representation of a parameter ID.
type Address struct {
	Path []Segment
}
