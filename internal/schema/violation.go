package schema

import (
	"fmt"
	"strings"

	"github.com/strelka-dev/a7p/internal/record"
)

// Violation is one concrete validation failure: the path to the offending
// value, the value itself, and the constraint that rejected it. A
// collect-all run returns a tree of violations whose internal nodes are
// synthetic object/array parents; a fail-fast run returns a single leaf.
// Violations are never mutated after creation.
type Violation struct {
	Path       record.Path
	Value      record.Value
	Constraint Constraint

	children []*Violation
}

// NewViolation creates a leaf violation.
func NewViolation(path record.Path, value record.Value, c Constraint) *Violation {
	return &Violation{Path: path, Value: value, Constraint: c}
}

// newParent creates a synthetic aggregating violation over children.
func newParent(kind Kind, path record.Path, value record.Value, children []*Violation) *Violation {
	msg := "invalid " + string(kind)
	return &Violation{
		Path:       path,
		Value:      value,
		Constraint: NewConstraint(kind, nil, msg),
		children:   children,
	}
}

// Error implements the error interface with the path-prefixed reason.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Constraint.Message())
}

// Children returns the nested violations of an aggregating parent, in the
// deterministic order they were produced.
func (v *Violation) Children() []*Violation {
	return v.children
}

// Leaves flattens the violation tree into its leaf failures in traversal
// order. This is the flat list recovery iterates over.
func (v *Violation) Leaves() []*Violation {
	if len(v.children) == 0 {
		return []*Violation{v}
	}
	var out []*Violation
	for _, c := range v.children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Format renders the violation for human display, one field per line.
func (v *Violation) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Path    :  %s\n", v.Path)
	switch v.Value.(type) {
	case record.String, record.Int, record.Float, record.Bool:
		fmt.Fprintf(&b, "Value   :  %v\n", record.ToGo(v.Value))
	default:
		b.WriteString("Value   :  <object>\n")
	}
	fmt.Fprintf(&b, "Reason  :  %s", v.Constraint.Message())
	return b.String()
}
