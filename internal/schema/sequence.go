package schema

import (
	"fmt"

	"github.com/strelka-dev/a7p/internal/record"
)

// SequenceSchema validates homogeneous arrays: item-count bounds on the
// whole array first, then the element schema against every entry in index
// order.
type SequenceSchema struct {
	base
	elem     Schema
	errorCap int
}

// Array creates a sequence schema with the given element schema. Optional
// by default.
func Array(elem Schema) *SequenceSchema {
	return &SequenceSchema{base: newBase(), elem: elem}
}

// Required marks the field as mandatory, with an optional custom message.
func (s *SequenceSchema) Required(msg ...string) *SequenceSchema {
	s.setRequired(msg)
	return s
}

// Nullable allows explicit null values.
func (s *SequenceSchema) Nullable() *SequenceSchema {
	s.nullable = true
	return s
}

// Min bounds the item count from below, inclusive.
func (s *SequenceSchema) Min(limit int) *SequenceSchema {
	s.tests = append(s.tests, func(v record.Value) *Constraint {
		if got := len(v.(record.List)); got < limit {
			c := NewConstraintf(KindMin, limit, func(args any) string {
				return fmt.Sprintf("expected minimum %d item(s) but got %d", args, got)
			})
			return &c
		}
		return nil
	})
	return s
}

// Max bounds the item count from above, inclusive.
func (s *SequenceSchema) Max(limit int) *SequenceSchema {
	s.tests = append(s.tests, func(v record.Value) *Constraint {
		if got := len(v.(record.List)); got > limit {
			c := NewConstraintf(KindMax, limit, func(args any) string {
				return fmt.Sprintf("expected maximum %d item(s) but got %d", args, got)
			})
			return &c
		}
		return nil
	})
	return s
}

// Cap limits how many element-level violations a collect-all run reports
// for this sequence. Beyond the cap the individual entries are replaced by
// a single summary violation. Zero means no cap.
func (s *SequenceSchema) Cap(limit int) *SequenceSchema {
	s.errorCap = limit
	return s
}

// Test appends a custom check on the whole array.
func (s *SequenceSchema) Test(t Test) *SequenceSchema {
	s.tests = append(s.tests, t)
	return s
}

// Validate implements Schema.
func (s *SequenceSchema) Validate(value record.Value, path record.Path, failFast bool) *Violation {
	// Length bounds and array-level tests run before any element.
	if v := s.check(record.KindList, value, path, failFast); v != nil {
		if failFast {
			return v
		}
		// Length failures do not suppress element checks in collect-all
		// mode; gather both.
		return aggregate(KindArray, path, value, append([]*Violation{v}, s.validateElements(value, path, failFast)...))
	}
	if record.IsNull(value) {
		return nil
	}
	errs := s.validateElements(value, path, failFast)
	if failFast && len(errs) > 0 {
		return errs[0]
	}
	return aggregate(KindArray, path, value, errs)
}

func (s *SequenceSchema) validateElements(value record.Value, path record.Path, failFast bool) []*Violation {
	list, ok := value.(record.List)
	if !ok || s.elem == nil {
		return nil
	}
	var errs []*Violation
	leaves := 0
	for i, e := range list {
		if v := s.elem.Validate(e, path.Element(i), failFast); v != nil {
			if failFast {
				return []*Violation{v}
			}
			errs = append(errs, v)
			leaves += len(v.Leaves())
		}
	}
	if s.errorCap > 0 && leaves > s.errorCap {
		c := NewConstraintf(KindTooMany, leaves, func(args any) string {
			return fmt.Sprintf("too many errors, %d found", args)
		})
		return []*Violation{NewViolation(path, value, c)}
	}
	return errs
}
