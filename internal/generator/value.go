package generator

import (
	"github.com/vk/designspace/internal/param"
	"github.com/vk/designspace/internal/paramid"
)

// Struct is the generated value of a structural param.
type Struct struct {
	// Choice is the selected variant, or "" when the param declares none.
	Choice param.StructuralKind
	// Values holds child values keyed by local name.
	Values map[string]any
	// Order lists the local names in generation order.
	Order []string
}

// Get returns the value of a direct child.
func (s *Struct) Get(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.Values[name]
	return v, ok
}

// Walk calls fn for every child, depth first, with absolute IDs rooted at id.
func (s *Struct) Walk(id string, fn func(id string, v any)) {
	if s == nil {
		return
	}
	for _, name := range s.Order {
		childID := paramid.Join(id, name)
		v := s.Values[name]
		fn(childID, v)
		if nested, ok := v.(*Struct); ok {
			nested.Walk(childID, fn)
		}
	}
}
