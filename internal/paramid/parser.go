// internal/paramid/parser.go
package paramid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	nameRegex  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
	indexRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Parse creates a new Address by parsing its canonical string representation.
func Parse(rawID string) (*Address, error) {
	if rawID == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	addr := &Address{}
	for i, segmentStr := range strings.Split(rawID, Separator) {
		if segmentStr == "" {
			return nil, fmt.Errorf("identifier path contains empty segment")
		}

		if indexRegex.MatchString(segmentStr) {
			if i == 0 {
				return nil, fmt.Errorf("identifier %q cannot start with an element index", rawID)
			}
			index, err := strconv.Atoi(segmentStr)
			if err != nil {
				return nil, fmt.Errorf("internal error parsing index: %w", err)
			}
			if index < 1 {
				return nil, fmt.Errorf("element index %d is out of range: indices are 1-based", index)
			}
			addr.Path = append(addr.Path, NewIndexSegment(index))
			continue
		}

		if !nameRegex.MatchString(segmentStr) {
			return nil, fmt.Errorf("invalid path segment format: %q", segmentStr)
		}
		addr.Path = append(addr.Path, NewSegment(segmentStr))
	}

	return addr, nil
}
