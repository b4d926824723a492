package schema

import (
	"fmt"
	"unicode/utf8"

	"github.com/strelka-dev/a7p/internal/record"
)

// StringSchema validates string scalars with length bounds.
type StringSchema struct {
	base
}

// String creates a string schema. Optional by default.
func String() *StringSchema {
	return &StringSchema{base: newBase()}
}

// Required marks the field as mandatory, with an optional custom message.
func (s *StringSchema) Required(msg ...string) *StringSchema {
	s.setRequired(msg)
	return s
}

// NotRequired marks the field back as optional.
func (s *StringSchema) NotRequired() *StringSchema {
	s.optional = true
	return s
}

// Nullable allows explicit null values.
func (s *StringSchema) Nullable() *StringSchema {
	s.nullable = true
	return s
}

// Max bounds the string length (in runes) from above, inclusive.
func (s *StringSchema) Max(limit int) *StringSchema {
	s.tests = append(s.tests, func(v record.Value) *Constraint {
		if utf8.RuneCountInString(string(v.(record.String))) > limit {
			c := NewConstraintf(KindMax, limit, func(args any) string {
				return fmt.Sprintf("Max length must be %d", args)
			})
			return &c
		}
		return nil
	})
	return s
}

// Min bounds the string length (in runes) from below, inclusive.
func (s *StringSchema) Min(limit int) *StringSchema {
	s.tests = append(s.tests, func(v record.Value) *Constraint {
		if utf8.RuneCountInString(string(v.(record.String))) < limit {
			c := NewConstraintf(KindMin, limit, func(args any) string {
				return fmt.Sprintf("Min length must be %d", args)
			})
			return &c
		}
		return nil
	})
	return s
}

// Test appends a custom check.
func (s *StringSchema) Test(t Test) *StringSchema {
	s.tests = append(s.tests, t)
	return s
}

// Validate implements Schema.
func (s *StringSchema) Validate(value record.Value, path record.Path, failFast bool) *Violation {
	return s.check(record.KindString, value, path, failFast)
}

// RangeArgs carries the closed interval and divisor of a scaled numeric
// range constraint. A stored integer v is valid iff
// Min <= v/Divisor <= Max.
type RangeArgs struct {
	Min     float64
	Max     float64
	Divisor float64
}

// NumberSchema validates numeric scalars (Int or Float) with interval and
// integrality constraints.
type NumberSchema struct {
	base
}

// Number creates a number schema. Optional by default.
func Number() *NumberSchema {
	return &NumberSchema{base: newBase()}
}

// Required marks the field as mandatory, with an optional custom message.
func (s *NumberSchema) Required(msg ...string) *NumberSchema {
	s.setRequired(msg)
	return s
}

// NotRequired marks the field back as optional.
func (s *NumberSchema) NotRequired() *NumberSchema {
	s.optional = true
	return s
}

// Nullable allows explicit null values.
func (s *NumberSchema) Nullable() *NumberSchema {
	s.nullable = true
	return s
}

// Ge requires value >= limit.
func (s *NumberSchema) Ge(limit float64) *NumberSchema {
	s.tests = append(s.tests, func(v record.Value) *Constraint {
		if n, _ := record.Number(v); n < limit {
			c := NewConstraintf(KindRange, limit, func(args any) string {
				return fmt.Sprintf("Value must be greater or equal to %v", args)
			})
			return &c
		}
		return nil
	})
	return s
}

// Le requires value <= limit.
func (s *NumberSchema) Le(limit float64) *NumberSchema {
	s.tests = append(s.tests, func(v record.Value) *Constraint {
		if n, _ := record.Number(v); n > limit {
			c := NewConstraintf(KindRange, limit, func(args any) string {
				return fmt.Sprintf("Value must be less or equal to %v", args)
			})
			return &c
		}
		return nil
	})
	return s
}

// Range requires min <= value/divisor <= max, a closed interval over the
// physical unit recovered from the scaled storage representation.
func (s *NumberSchema) Range(min, max, divisor float64) *NumberSchema {
	args := RangeArgs{Min: min, Max: max, Divisor: divisor}
	s.tests = append(s.tests, func(v record.Value) *Constraint {
		n, _ := record.Number(v)
		real := n / divisor
		if real < min || real > max {
			c := NewConstraintf(KindRange, args, func(a any) string {
				r := a.(RangeArgs)
				return fmt.Sprintf("expected value in range [%.1f, %.1f]", r.Min*r.Divisor, r.Max*r.Divisor)
			})
			return &c
		}
		return nil
	})
	return s
}

// Integer requires the value to have no fractional part.
func (s *NumberSchema) Integer() *NumberSchema {
	s.tests = append(s.tests, func(v record.Value) *Constraint {
		if _, ok := v.(record.Int); ok {
			return nil
		}
		n, _ := record.Number(v)
		if n != float64(int64(n)) {
			c := NewConstraint(KindInteger, nil, "Value must be valid 'int', got 'float'")
			return &c
		}
		return nil
	})
	return s
}

// Test appends a custom check.
func (s *NumberSchema) Test(t Test) *NumberSchema {
	s.tests = append(s.tests, t)
	return s
}

// Validate implements Schema.
func (s *NumberSchema) Validate(value record.Value, path record.Path, failFast bool) *Violation {
	return s.check(record.KindNumber, value, path, failFast)
}

// MixedSchema validates a value of any kind, typically through a OneOf
// choice set. Used for discriminator enums.
type MixedSchema struct {
	base
}

// Mixed creates an any-kind schema. Optional by default.
func Mixed() *MixedSchema {
	return &MixedSchema{base: newBase()}
}

// Required marks the field as mandatory, with an optional custom message.
func (s *MixedSchema) Required(msg ...string) *MixedSchema {
	s.setRequired(msg)
	return s
}

// Nullable allows explicit null values.
func (s *MixedSchema) Nullable() *MixedSchema {
	s.nullable = true
	return s
}

// OneOf requires the value to equal one of the given choices.
func (s *MixedSchema) OneOf(choices ...string) *MixedSchema {
	s.tests = append(s.tests, func(v record.Value) *Constraint {
		if str, ok := v.(record.String); ok {
			for _, c := range choices {
				if string(str) == c {
					return nil
				}
			}
		}
		c := NewConstraintf(KindOneOf, choices, func(args any) string {
			return fmt.Sprintf("Must be one of %v", args)
		})
		return &c
	})
	return s
}

// Test appends a custom check.
func (s *MixedSchema) Test(t Test) *MixedSchema {
	s.tests = append(s.tests, t)
	return s
}

// Validate implements Schema.
func (s *MixedSchema) Validate(value record.Value, path record.Path, failFast bool) *Violation {
	return s.check("", value, path, failFast)
}
