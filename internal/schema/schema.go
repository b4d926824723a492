// Package schema implements a composable validation engine over generic
// record trees. Schemas are immutable configuration objects built once at
// startup; a validation run walks a schema against a record.Value and
// produces either nil or a tree of Violations with path tracking.
//
// Mapping fields are optional by default; Required is an explicit opt-in.
// Unknown keys in a value are ignored: mappings are open contracts.
package schema

import (
	"fmt"

	"github.com/strelka-dev/a7p/internal/record"
)

// Schema is one node of a validation tree. Concrete kinds are
// StringSchema, NumberSchema, MixedSchema (scalars), MappingSchema,
// SequenceSchema and UnionSchema.
type Schema interface {
	// Validate walks the schema against value at path. Under failFast the
	// first violation anywhere aborts the walk and is returned alone;
	// otherwise the full violation tree is collected. A nil return means
	// the value is valid.
	Validate(value record.Value, path record.Path, failFast bool) *Violation

	isOptional() bool
}

// Validate runs s against value from the root path and reports the outcome
// as an error. The returned error, when non-nil, is a *Violation.
func Validate(s Schema, value record.Value, failFast bool) error {
	if v := s.Validate(value, nil, failFast); v != nil {
		return v
	}
	return nil
}

// Test is one atomic check on an already type-checked value. A nil return
// means the check passed; otherwise the returned constraint describes the
// failure and the engine attaches path and value.
type Test func(value record.Value) *Constraint

// base carries the behavior every schema kind shares: the optional/required
// marking, nullability, and the ordered test list.
type base struct {
	optional    bool
	requiredMsg string
	nullable    bool
	tests       []Test
}

func newBase() base {
	return base{optional: true, requiredMsg: "Field is required"}
}

func (b *base) isOptional() bool { return b.optional }

func (b *base) setRequired(msg []string) {
	b.optional = false
	if len(msg) > 0 {
		b.requiredMsg = msg[0]
	}
}

// requiredConstraint is produced by a Mapping when this field is absent.
func (b *base) requiredConstraint() Constraint {
	return NewConstraint(KindRequired, nil, b.requiredMsg)
}

// check runs the null and kind gates, then every registered test in order.
// expect == "" accepts any kind. Under failFast the first failing test
// returns immediately; otherwise all failures become siblings under an
// aggregate parent.
func (b *base) check(expect record.Kind, value record.Value, path record.Path, failFast bool) *Violation {
	if record.IsNull(value) {
		if b.nullable {
			return nil
		}
		c := NewConstraint(KindNotNullable, nil, "Value can't be null")
		return NewViolation(path, value, c)
	}

	actual := record.KindOf(value)
	if expect != "" && actual != expect {
		c := NewConstraintf(KindType, [2]record.Kind{expect, actual}, func(args any) string {
			pair := args.([2]record.Kind)
			return fmt.Sprintf("Value is not of type %q, got %q", pair[0], pair[1])
		})
		return NewViolation(path, value, c)
	}

	var errs []*Violation
	for _, t := range b.tests {
		if c := t(value); c != nil {
			v := NewViolation(path, value, *c)
			if failFast {
				return v
			}
			errs = append(errs, v)
		}
	}
	return aggregate(KindValue, path, value, errs)
}

// aggregate wraps collected violations under a synthetic parent, or passes
// a single violation through unwrapped.
func aggregate(kind Kind, path record.Path, value record.Value, errs []*Violation) *Violation {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return newParent(kind, path, value, errs)
	}
}
