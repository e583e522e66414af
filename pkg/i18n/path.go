package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a Path: a mapping field or a sequence index.
type Segment struct {
	name    string
	index   int
	isIndex bool
}

// Field returns a segment that selects a mapping key.
func Field(name string) Segment {
	return Segment{name: name}
}

// Index returns a segment that selects a sequence element.
func Index(i int) Segment {
	return Segment{index: i, isIndex: true}
}

// IsIndex reports whether the segment selects a sequence element.
func (s Segment) IsIndex() bool { return s.isIndex }

// Name returns the field name of a field segment.
func (s Segment) Name() string { return s.name }

// Pos returns the index of an index segment.
func (s Segment) Pos() int { return s.index }

func (s Segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.name
}

// Path is the sequence of segments from a locale root to a node.
type Path []Segment

// Append returns a new path with segs added. The receiver is never modified,
// so sibling views built from the same parent never share backing arrays.
func (p Path) Append(segs ...Segment) Path {
	out := make(Path, len(p), len(p)+len(segs))
	copy(out, p)
	return append(out, segs...)
}

// String renders the path as "pages[0].title".
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if !seg.isIndex && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// ParsePath parses dotted field names with bracketed indexes, for example
// "messages.status.online" or "pages[0].title". The empty string is the root.
func ParsePath(s string) (Path, error) {
	var p Path
	i := 0
	expectField := true

	for i < len(s) {
		switch s[i] {
		case '[':
			if expectField && len(p) > 0 {
				return nil, fmt.Errorf("%w: %q: empty field at %d", ErrInvalidPath, s, i)
			}
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q: unclosed bracket at %d", ErrInvalidPath, s, i)
			}
			raw := s[i+1 : i+end]
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 || strings.HasPrefix(raw, "+") {
				return nil, fmt.Errorf("%w: %q: invalid index %q", ErrInvalidPath, s, raw)
			}
			p = append(p, Index(n))
			i += end + 1
			expectField = false
		case '.':
			if expectField {
				return nil, fmt.Errorf("%w: %q: empty field at %d", ErrInvalidPath, s, i)
			}
			i++
			expectField = true
			if i == len(s) {
				return nil, fmt.Errorf("%w: %q: trailing dot", ErrInvalidPath, s)
			}
		case ']':
			return nil, fmt.Errorf("%w: %q: unexpected ']' at %d", ErrInvalidPath, s, i)
		default:
			if !expectField {
				return nil, fmt.Errorf("%w: %q: missing '.' before field at %d", ErrInvalidPath, s, i)
			}
			end := strings.IndexAny(s[i:], ".[]")
			if end < 0 {
				end = len(s) - i
			}
			p = append(p, Field(s[i:i+end]))
			i += end
			expectField = false
		}
	}

	return p, nil
}
