package schema

import "fmt"

// Kind tags the category of a constraint, and therefore of the violation it
// produces when it fails.
type Kind string

const (
	// KindType indicates the value's generic kind did not match the schema.
	KindType Kind = "type"

	// KindRequired indicates a non-optional mapping field was absent.
	KindRequired Kind = "required"

	// KindNotNullable indicates a null value where the schema forbids null.
	KindNotNullable Kind = "not_nullable"

	// KindMin and KindMax indicate a length or item-count bound failure.
	KindMin Kind = "min"
	KindMax Kind = "max"

	// KindRange indicates a scaled numeric value outside its closed interval.
	KindRange Kind = "range"

	// KindInteger indicates a fractional value where an integer is expected.
	KindInteger Kind = "integer"

	// KindOneOf indicates a value outside an enumerated choice set.
	KindOneOf Kind = "one_of"

	// KindUnion indicates a value that matched none of a union's
	// alternatives; the violation's children hold each attempt's failure.
	KindUnion Kind = "union"

	// KindDependency indicates a cross-field rule spanning sibling values.
	KindDependency Kind = "dependency"

	// KindUnsupported indicates a discriminator value outside the known
	// tags, short-circuiting validation of the fields it selects.
	KindUnsupported Kind = "unsupported"

	// KindTooMany replaces element-level violations beyond a sequence's
	// configured error cap.
	KindTooMany Kind = "too_many"

	// KindUnique indicates duplicate values where uniqueness is required.
	KindUnique Kind = "unique"

	// KindObject, KindArray and KindValue tag the synthetic aggregating
	// parents of a collect-all violation tree: mapping, sequence, and
	// multi-test scalar failures respectively.
	KindObject Kind = "object"
	KindArray  Kind = "array"
	KindValue  Kind = "value"
)

// Constraint is the smallest unit of failure information: a tagged check
// with its arguments and a lazily-formatted message. Constraints are
// immutable once constructed and owned by exactly one schema node.
type Constraint struct {
	Kind Kind
	Args any

	msg  string
	msgf func(args any) string
}

// NewConstraint creates a constraint with a fixed message.
func NewConstraint(kind Kind, args any, msg string) Constraint {
	return Constraint{Kind: kind, Args: args, msg: msg}
}

// NewConstraintf creates a constraint whose message is formatted from its
// arguments on demand.
func NewConstraintf(kind Kind, args any, format func(args any) string) Constraint {
	return Constraint{Kind: kind, Args: args, msgf: format}
}

// Message formats the human-readable reason for this constraint.
func (c Constraint) Message() string {
	if c.msgf != nil {
		return c.msgf(c.Args)
	}
	if c.msg != "" {
		return c.msg
	}
	return string(c.Kind) + " constraint failed"
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s: %s", c.Kind, c.Message())
}
