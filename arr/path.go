package arr

import (
	"strconv"
	"strings"

	"github.com/hasbyte1/go-arrayy/value"
)

// SegmentKind classifies one step of a [Path].
type SegmentKind uint8

const (
	// SegmentKey addresses a named entry: "user" in "user.name".
	SegmentKey SegmentKind = iota
	// SegmentIndex addresses a list element through brackets: "[2]" in
	// "tags[2]".
	SegmentIndex
	// SegmentWildcard fans out over every element at its level.
	SegmentWildcard
)

// Segment is one parsed step of a path.
type Segment struct {
	Kind SegmentKind
	Key  value.Key
}

// Path is a pre-parsed sequence of segments. Parse once with
// [Notation.Parse] and reuse it for every traversal.
type Path []Segment

// Notation configures how path strings are split.
type Notation struct {
	// Separator splits nesting levels. An empty separator disables
	// nesting: every path is a single top-level key.
	Separator string
	// Wildcard is the reserved segment meaning "every element".
	// An empty Wildcard disables wildcard expansion.
	Wildcard string
}

// DefaultNotation splits on "." and expands "*".
var DefaultNotation = Notation{Separator: ".", Wildcard: "*"}

// Parse splits path into typed segments.
//
//	DefaultNotation.Parse("users.*.tags[0]")
//	// → Key(users) Wildcard Key(tags) Index(0)
//
// Bracket suffixes are only recognised when every bracket holds an integer
// or the wildcard; otherwise the segment is kept as a literal key.
func (n Notation) Parse(path string) Path {
	parts := []string{path}
	if n.Separator != "" {
		parts = strings.Split(path, n.Separator)
	}
	out := make(Path, 0, len(parts))
	for _, part := range parts {
		out = n.appendSegments(out, part)
	}
	return out
}

func (n Notation) appendSegments(out Path, part string) Path {
	if n.Wildcard != "" && part == n.Wildcard {
		return append(out, Segment{Kind: SegmentWildcard})
	}
	name, indices, ok := splitBrackets(part, n.Wildcard)
	if !ok {
		return append(out, Segment{Kind: SegmentKey, Key: value.StringKey(part)})
	}
	if name != "" {
		out = append(out, Segment{Kind: SegmentKey, Key: value.StringKey(name)})
	}
	return append(out, indices...)
}

// splitBrackets parses "name[1][*]" into "name" and its bracket segments.
func splitBrackets(part, wildcard string) (string, []Segment, bool) {
	open := strings.IndexByte(part, '[')
	if open < 0 || !strings.HasSuffix(part, "]") {
		return "", nil, false
	}
	name, rest := part[:open], part[open:]
	var segs []Segment
	for rest != "" {
		end := strings.IndexByte(rest, ']')
		if rest[0] != '[' || end < 0 {
			return "", nil, false
		}
		inner := rest[1:end]
		if wildcard != "" && inner == wildcard {
			segs = append(segs, Segment{Kind: SegmentWildcard})
		} else {
			k := value.StringKey(inner)
			if !k.IsInt() {
				return "", nil, false
			}
			segs = append(segs, Segment{Kind: SegmentIndex, Key: k})
		}
		rest = rest[end+1:]
	}
	return name, segs, true
}

// String renders p with the default notation.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		switch seg.Kind {
		case SegmentIndex:
			b.WriteString("[" + strconv.Itoa(seg.Key.Int()) + "]")
			continue
		case SegmentWildcard:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString("*")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Key.String())
	}
	return b.String()
}

// Lookup resolves p against m. A wildcard collects the resolved value of
// every branch into a list; branches that miss are skipped.
func (p Path) Lookup(m *value.Map) (value.Value, bool) {
	return lookup(value.FromMap(m), p)
}

func lookup(cur value.Value, p Path) (value.Value, bool) {
	if len(p) == 0 {
		return cur, true
	}
	m, ok := cur.AsMap()
	if !ok {
		return value.Value{}, false
	}
	if p[0].Kind == SegmentWildcard {
		out := value.NewMap()
		for _, child := range m.All() {
			if v, ok := lookup(child, p[1:]); ok {
				out.Append(v)
			}
		}
		return value.FromMap(out), true
	}
	child, ok := m.Get(p[0].Key)
	if !ok {
		return value.Value{}, false
	}
	return lookup(child, p[1:])
}

// Exists reports whether p resolves, exactly when [Path.Lookup] would
// report a match. A wildcard over a container always resolves, to an empty
// list when no branch matches.
func (p Path) Exists(m *value.Map) bool {
	_, ok := lookup(value.FromMap(m), p)
	return ok
}

// Assign stores v at p, creating missing levels and replacing non-container
// intermediates with empty maps. A wildcard assigns to every existing
// element at its level.
func (p Path) Assign(m *value.Map, v value.Value) {
	if len(p) == 0 {
		return
	}
	seg, rest := p[0], p[1:]
	if seg.Kind == SegmentWildcard {
		for k := range m.All() {
			if len(rest) == 0 {
				m.Set(k, v.Clone())
				continue
			}
			rest.Assign(ensureMap(m, k), v)
		}
		return
	}
	if len(rest) == 0 {
		m.Set(seg.Key, v)
		return
	}
	rest.Assign(ensureMap(m, seg.Key), v)
}

func ensureMap(m *value.Map, k value.Key) *value.Map {
	if cur, ok := m.Get(k); ok {
		if nested, ok := cur.AsMap(); ok {
			return nested
		}
	}
	nested := value.NewMap()
	m.Set(k, value.FromMap(nested))
	return nested
}

// Forget removes the entry at p and reports whether anything was removed.
// Intermediate levels are left in place.
func (p Path) Forget(m *value.Map) bool {
	if len(p) == 0 {
		return false
	}
	seg, rest := p[0], p[1:]
	if seg.Kind == SegmentWildcard {
		removed := false
		for k, child := range m.All() {
			if len(rest) == 0 {
				removed = m.Delete(k) || removed
				continue
			}
			if nested, ok := child.AsMap(); ok && rest.Forget(nested) {
				removed = true
			}
		}
		return removed
	}
	if len(rest) == 0 {
		return m.Delete(seg.Key)
	}
	child, ok := m.Get(seg.Key)
	if !ok {
		return false
	}
	nested, ok := child.AsMap()
	return ok && rest.Forget(nested)
}
