// internal/paramid/address.go
package paramid

import (
	"strconv"
	"strings"
)

// String serializes the Address into its canonical path string representation.
func (a *Address) String() string {
	if a == nil {
		return ""
	}

	var sb strings.Builder
	for i, segment := range a.Path {
		if i > 0 {
			sb.WriteString(Separator)
		}
		if segment.IsIndex() {
			sb.WriteString(strconv.Itoa(segment.Index))
		} else {
			sb.WriteString(segment.Name)
		}
	}

	return sb.String()
}
