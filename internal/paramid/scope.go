package paramid

import (
	"strconv"
	"strings"
)

// Join concatenates non-empty ID parts with the separator.
func Join(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, Separator)
}

// Parent returns the enclosing scope of id, or "" for a top-level ID.
func Parent(id string) string {
	i := strings.LastIndex(id, Separator)
	if i < 0 {
		return ""
	}
	return id[:i]
}

// Element returns the ID of an array element. indices are 1-based.
func Element(id string, indices ...int) string {
	parts := make([]string, 0, len(indices)+1)
	parts = append(parts, id)
	for _, i := range indices {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, Separator)
}

// IsWithin reports whether id equals scope or is nested below it.
func IsWithin(id, scope string) bool {
	return id == scope || strings.HasPrefix(id, scope+Separator)
}

// Resolve maps a relative reference written inside the parameter `from` to an
// absolute ID. The search starts in the scope of `from` itself and widens one
// level at a time until the root; the first candidate accepted by known wins.
func Resolve(ref, from string, known func(id string) bool) (string, bool) {
	for scope := from; ; scope = Parent(scope) {
		candidate := Join(scope, ref)
		if known(candidate) {
			return candidate, true
		}
		if scope == "" {
			return "", false
		}
	}
}
