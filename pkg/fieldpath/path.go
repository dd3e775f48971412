package fieldpath

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Segment is one step of a property path: a field name, optionally followed by
// a collection index ("Orders[2]").
type Segment struct {
	Name    string
	Index   int
	Indexed bool
}

func (s Segment) String() string {
	if !s.Indexed {
		return s.Name
	}
	return s.Name + "[" + strconv.Itoa(s.Index) + "]"
}

// Path is a root-relative property path.
type Path []Segment

// Parse splits "Orders[2].Total" into segments. The empty string is the empty
// path, which addresses the model itself.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, s)
		}
		p = append(p, seg)
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseSegment(part string) (Segment, error) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		if part == "" || strings.ContainsRune(part, ']') {
			return Segment{}, ErrMalformedPath
		}
		return Segment{Name: part}, nil
	}
	name, rest := part[:open], part[open+1:]
	if name == "" || !strings.HasSuffix(rest, "]") {
		return Segment{}, ErrMalformedPath
	}
	digits := rest[:len(rest)-1]
	if digits == "" || strings.ContainsAny(digits, "[]+-") {
		return Segment{}, ErrMalformedPath
	}
	idx, err := strconv.Atoi(digits)
	if err != nil || idx < 0 {
		return Segment{}, ErrMalformedPath
	}
	return Segment{Name: name, Index: idx, Indexed: true}, nil
}

func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Pattern renders the path with every index replaced by "[]", the form rule
// engines use to address collection element rules.
func (p Path) Pattern() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Name)
		if seg.Indexed {
			b.WriteString("[]")
		}
	}
	return b.String()
}

// Child returns a new path with name appended.
func (p Path) Child(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Segment{Name: name})
}

// Index returns a new path whose last segment carries index i.
// It panics on the empty path.
func (p Path) Index(i int) Path {
	out := slices.Clone(p)
	out[len(out)-1].Index = i
	out[len(out)-1].Indexed = true
	return out
}

// Parent drops the last segment.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return slices.Clone(p[:len(p)-1])
}

// Last returns the final segment, if any.
func (p Path) Last() (Segment, bool) {
	if len(p) == 0 {
		return Segment{}, false
	}
	return p[len(p)-1], true
}

// FieldIdentifier names one editable value as the form sees it: the object
// that owns it and the property name on that object. Owner is a pointer, so
// two identifiers are equal when they reference the same object and name.
type FieldIdentifier struct {
	Owner any
	Name  string
}

// Field builds a FieldIdentifier.
func Field(owner any, name string) FieldIdentifier {
	return FieldIdentifier{Owner: owner, Name: name}
}

func (f FieldIdentifier) String() string {
	return fmt.Sprintf("%T.%s", f.Owner, f.Name)
}
