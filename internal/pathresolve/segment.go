package pathresolve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Segment is one dot-separated step of a path.
type Segment struct {
	Name string
	// Indexed is set for "[N]" and "[*]" suffixes.
	Indexed  bool
	Wildcard bool
	Index    int
}

// String renders the segment in path syntax.
func (s Segment) String() string {
	switch {
	case s.Wildcard:
		return s.Name + "[*]"
	case s.Indexed:
		return s.Name + "[" + strconv.Itoa(s.Index) + "]"
	default:
		return s.Name
	}
}

// ParsePattern parses a path such as "a.b[0].c" or "a.b[*].c".
// An empty name before the index addresses the current value itself.
func ParsePattern(pattern string) ([]Segment, error) {
	if pattern == "" {
		return nil, errors.New("empty path")
	}

	var segments []Segment

	for part := range strings.SplitSeq(pattern, ".") {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", pattern)
		}

		open := strings.IndexByte(part, '[')
		if open < 0 {
			if strings.ContainsRune(part, ']') {
				return nil, fmt.Errorf("invalid path %q: unbalanced bracket in %q", pattern, part)
			}

			segments = append(segments, Segment{Name: part})

			continue
		}

		if !strings.HasSuffix(part, "]") {
			return nil, fmt.Errorf("invalid path %q: index must end segment %q", pattern, part)
		}

		seg := Segment{Name: part[:open], Indexed: true}
		idx := part[open+1 : len(part)-1]

		if idx == "*" {
			seg.Wildcard = true
		} else {
			n, err := strconv.Atoi(idx)
			if err != nil || n < 0 || strings.ContainsAny(idx, "+-") {
				return nil, fmt.Errorf("invalid path %q: bad index %q", pattern, idx)
			}

			seg.Index = n
		}

		segments = append(segments, seg)
	}

	return segments, nil
}

// JoinSegments renders segments back into path syntax.
func JoinSegments(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.String()
	}

	return strings.Join(parts, ".")
}
