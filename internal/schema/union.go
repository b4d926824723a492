package schema

import "github.com/strelka-dev/a7p/internal/record"

// UnionSchema validates a value against ordered alternatives; the value is
// valid if any alternative accepts it (first match wins). Alternatives must
// be mutually exclusive by construction, typically by pinning a
// discriminator field to a single constant in each.
type UnionSchema struct {
	base
	alts []Schema
}

// Union creates a union schema over the given alternatives. Optional by
// default.
func Union(alts ...Schema) *UnionSchema {
	return &UnionSchema{base: newBase(), alts: alts}
}

// Required marks the field as mandatory, with an optional custom message.
func (u *UnionSchema) Required(msg ...string) *UnionSchema {
	u.setRequired(msg)
	return u
}

// Nullable allows explicit null values.
func (u *UnionSchema) Nullable() *UnionSchema {
	u.nullable = true
	return u
}

// Validate implements Schema. When no alternative accepts, the returned
// violation aggregates every attempted alternative's failure as children.
func (u *UnionSchema) Validate(value record.Value, path record.Path, failFast bool) *Violation {
	if v := u.check("", value, path, failFast); v != nil {
		return v
	}
	if record.IsNull(value) {
		return nil
	}

	attempts := make([]*Violation, 0, len(u.alts))
	for _, alt := range u.alts {
		v := alt.Validate(value, path, failFast)
		if v == nil {
			return nil
		}
		attempts = append(attempts, v)
	}

	c := NewConstraint(KindUnion, len(u.alts), "value matched no alternative")
	parent := NewViolation(path, value, c)
	parent.children = attempts
	return parent
}
