package schema

import "github.com/strelka-dev/a7p/internal/record"

// Field pairs a mapping key with the schema of its value.
type Field struct {
	Name   string
	Schema Schema
}

// F is a shorthand Field constructor for declaration tables.
func F(name string, s Schema) Field {
	return Field{Name: name, Schema: s}
}

// ObjectCheck is a mapping-level rule spanning sibling fields. It runs
// after the ordinary field checks and may report a violation at any child
// path, typically the field a user should fix.
type ObjectCheck func(obj record.Object, path record.Path, failFast bool) *Violation

// MappingSchema validates keyed objects against an ordered field table.
// Fields are visited in declaration order so the output is deterministic.
// Unknown keys in the value are ignored: the contract is open.
type MappingSchema struct {
	base
	fields []Field
	checks []ObjectCheck
}

// Mapping creates a mapping schema over the given fields. Optional by
// default, like every other schema kind.
func Mapping(fields ...Field) *MappingSchema {
	return &MappingSchema{base: newBase(), fields: fields}
}

// Required marks the field as mandatory, with an optional custom message.
func (m *MappingSchema) Required(msg ...string) *MappingSchema {
	m.setRequired(msg)
	return m
}

// Nullable allows explicit null values.
func (m *MappingSchema) Nullable() *MappingSchema {
	m.nullable = true
	return m
}

// Check appends a cross-field rule evaluated after the field walk.
func (m *MappingSchema) Check(c ObjectCheck) *MappingSchema {
	m.checks = append(m.checks, c)
	return m
}

// Field returns the schema declared for name, or nil.
func (m *MappingSchema) Field(name string) Schema {
	for _, f := range m.fields {
		if f.Name == name {
			return f.Schema
		}
	}
	return nil
}

// Validate implements Schema.
func (m *MappingSchema) Validate(value record.Value, path record.Path, failFast bool) *Violation {
	if v := m.check(record.KindObject, value, path, failFast); v != nil {
		return v
	}
	if record.IsNull(value) {
		return nil
	}
	obj := value.(record.Object)

	var errs []*Violation
	for _, f := range m.fields {
		fieldPath := path.Child(f.Name)
		child, present := obj[f.Name]
		if !present {
			if f.Schema.isOptional() {
				continue
			}
			v := NewViolation(fieldPath, nil, requiredConstraintOf(f.Schema))
			if failFast {
				return v
			}
			errs = append(errs, v)
			continue
		}
		if v := f.Schema.Validate(child, fieldPath, failFast); v != nil {
			if failFast {
				return v
			}
			errs = append(errs, v)
		}
	}

	for _, c := range m.checks {
		if v := c(obj, path, failFast); v != nil {
			if failFast {
				return v
			}
			errs = append(errs, v)
		}
	}

	return aggregate(KindObject, path, value, errs)
}

// requiredConstraintOf extracts the required-field constraint of any schema
// kind through its embedded base.
func requiredConstraintOf(s Schema) Constraint {
	type hasBase interface{ requiredConstraint() Constraint }
	if b, ok := s.(hasBase); ok {
		return b.requiredConstraint()
	}
	return NewConstraint(KindRequired, nil, "Field is required")
}
