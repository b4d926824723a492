package record

import (
	"strconv"
	"strings"
)

// Step is one element of a Path: either a field name or an array index.
type Step struct {
	key     string
	index   int
	indexed bool
}

// Field creates a field-name step.
func Field(name string) Step {
	return Step{key: name}
}

// Index creates an array-index step.
func Index(i int) Step {
	return Step{index: i, indexed: true}
}

// IsIndex reports whether the step addresses an array element.
func (s Step) IsIndex() bool { return s.indexed }

// Key returns the field name of a non-index step, or "" for indexes.
func (s Step) Key() string { return s.key }

// Index returns the array index of an index step.
func (s Step) Index() int { return s.index }

func (s Step) String() string {
	if s.indexed {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.key
}

// Path addresses a value inside a record: an ordered sequence of field
// names and array indices, rooted at the record itself. Paths are rendered
// with "/" separators; the rendering is stable for a given path so it can
// be logged and compared.
type Path []Step

// Child returns a new path extended with a field-name step.
// The receiver is never mutated, so sibling walks may share a prefix.
func (p Path) Child(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Field(name))
}

// Element returns a new path extended with an array-index step.
func (p Path) Element(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Index(i))
}

// String renders the path as "~/a/b/[2]".
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('~')
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// Dotted renders the field-name steps as "a.b", skipping array indices.
// This is the legacy flat-key form used for recovery registry fallback.
func (p Path) Dotted() string {
	parts := make([]string, 0, len(p))
	for _, s := range p {
		if s.indexed {
			continue
		}
		parts = append(parts, s.key)
	}
	return strings.Join(parts, ".")
}

// Leaf returns the last field-name step, or "" for an empty path.
// Trailing array indices are skipped: the leaf of "profile/distances/[3]"
// is "distances".
func (p Path) Leaf() string {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].indexed {
			return p[i].key
		}
	}
	return ""
}
