package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strelka-dev/a7p/internal/record"
)

// =============================================================================
// Scalar schemas
// =============================================================================

func TestStringTypeMismatch(t *testing.T) {
	v := String().Validate(record.Int(42), nil, false)
	require.NotNil(t, v)
	assert.Equal(t, KindType, v.Constraint.Kind)
	assert.Contains(t, v.Constraint.Message(), "string")
}

func TestStringMaxCountsRunes(t *testing.T) {
	s := String().Max(4)

	assert.Nil(t, s.Validate(record.String("абвг"), nil, false))

	v := s.Validate(record.String("абвгд"), nil, false)
	require.NotNil(t, v)
	assert.Equal(t, KindMax, v.Constraint.Kind)
	assert.Equal(t, "Max length must be 4", v.Constraint.Message())
}

func TestStringMin(t *testing.T) {
	s := String().Min(2)
	assert.Nil(t, s.Validate(record.String("ab"), nil, false))
	v := s.Validate(record.String("a"), nil, false)
	require.NotNil(t, v)
	assert.Equal(t, KindMin, v.Constraint.Kind)
}

func TestNullRejectedByDefault(t *testing.T) {
	v := String().Validate(record.Null{}, nil, false)
	require.NotNil(t, v)
	assert.Equal(t, KindNotNullable, v.Constraint.Kind)
}

func TestNullableAcceptsNull(t *testing.T) {
	assert.Nil(t, String().Nullable().Validate(record.Null{}, nil, false))
}

func TestNumberRangeDivisorBoundaries(t *testing.T) {
	// stored v is valid iff min <= v/divisor <= max, closed interval
	s := Number().Range(10.0, 3000.0, 10)

	assert.Nil(t, s.Validate(record.Int(100), nil, false))   // 10.0, lower bound
	assert.Nil(t, s.Validate(record.Int(30000), nil, false)) // 3000.0, upper bound

	low := s.Validate(record.Int(99), nil, false)
	require.NotNil(t, low)
	assert.Equal(t, KindRange, low.Constraint.Kind)
	assert.Equal(t, "expected value in range [100.0, 30000.0]", low.Constraint.Message())

	high := s.Validate(record.Int(30001), nil, false)
	require.NotNil(t, high)
	assert.Equal(t, KindRange, high.Constraint.Kind)
}

func TestNumberRangeNegativeBounds(t *testing.T) {
	s := Number().Range(-200.0, 200.0, 1000)
	assert.Nil(t, s.Validate(record.Int(-200000), nil, false))
	assert.NotNil(t, s.Validate(record.Int(-200001), nil, false))
}

func TestNumberGeLe(t *testing.T) {
	s := Number().Ge(0).Le(255)
	assert.Nil(t, s.Validate(record.Int(0), nil, false))
	assert.Nil(t, s.Validate(record.Int(255), nil, false))
	assert.NotNil(t, s.Validate(record.Int(-1), nil, false))
	assert.NotNil(t, s.Validate(record.Int(256), nil, false))
}

func TestNumberInteger(t *testing.T) {
	s := Number().Integer()
	assert.Nil(t, s.Validate(record.Int(7), nil, false))
	assert.Nil(t, s.Validate(record.Float(7.0), nil, false))

	v := s.Validate(record.Float(7.5), nil, false)
	require.NotNil(t, v)
	assert.Equal(t, KindInteger, v.Constraint.Kind)
}

func TestMixedOneOf(t *testing.T) {
	s := Mixed().OneOf("G1", "G7", "CUSTOM")
	assert.Nil(t, s.Validate(record.String("G7"), nil, false))

	v := s.Validate(record.String("G9"), nil, false)
	require.NotNil(t, v)
	assert.Equal(t, KindOneOf, v.Constraint.Kind)

	// non-string values never match a choice set
	assert.NotNil(t, s.Validate(record.Int(1), nil, false))
}

// =============================================================================
// Fail-fast vs collect-all
// =============================================================================

func TestCollectAllGathersEveryViolation(t *testing.T) {
	m := Mapping(
		F("a", Number().Ge(0).Required()),
		F("b", String().Max(2).Required()),
		F("c", Number().Le(10).Required()),
	)
	obj := record.Object{
		"a": record.Int(-1),
		"b": record.String("long"),
		"c": record.Int(11),
	}

	v := m.Validate(obj, nil, false)
	require.NotNil(t, v)
	leaves := v.Leaves()
	require.Len(t, leaves, 3)

	// declaration order, not map order
	assert.Equal(t, "~/a", leaves[0].Path.String())
	assert.Equal(t, "~/b", leaves[1].Path.String())
	assert.Equal(t, "~/c", leaves[2].Path.String())
}

func TestFailFastStopsAtFirstViolation(t *testing.T) {
	m := Mapping(
		F("a", Number().Ge(0).Required()),
		F("b", String().Max(2).Required()),
	)
	obj := record.Object{
		"a": record.Int(-1),
		"b": record.String("long"),
	}

	v := m.Validate(obj, nil, true)
	require.NotNil(t, v)
	assert.Empty(t, v.Children())
	assert.Equal(t, "~/a", v.Path.String())
}

func TestValidateHelperReturnsNilOnSuccess(t *testing.T) {
	m := Mapping(F("a", Number()))
	assert.NoError(t, Validate(m, record.Object{"a": record.Int(1)}, false))
	assert.Error(t, Validate(m, record.Object{"a": record.String("x")}, false))
}

// =============================================================================
// Mapping
// =============================================================================

func TestMappingOptionalByDefault(t *testing.T) {
	m := Mapping(F("opt", Number()))
	assert.Nil(t, m.Validate(record.Object{}, nil, false))
}

func TestMappingRequiredField(t *testing.T) {
	m := Mapping(F("req", Number().Required("Value is required")))

	v := m.Validate(record.Object{}, nil, false)
	require.NotNil(t, v)
	assert.Equal(t, KindRequired, v.Constraint.Kind)
	assert.Equal(t, "~/req", v.Path.String())
	assert.Equal(t, "Value is required", v.Constraint.Message())
}

func TestMappingIgnoresUnknownKeys(t *testing.T) {
	m := Mapping(F("known", Number()))
	obj := record.Object{"known": record.Int(1), "extra": record.String("ignored")}
	assert.Nil(t, m.Validate(obj, nil, false))
}

func TestMappingCrossFieldCheck(t *testing.T) {
	m := Mapping(
		F("idx", Number()),
		F("items", Array(Number())),
	).Check(func(obj record.Object, path record.Path, _ bool) *Violation {
		idx, _ := record.Number(obj["idx"])
		items := obj["items"].(record.List)
		if int(idx) >= len(items) {
			c := NewConstraint(KindDependency, nil, "index out of table")
			return NewViolation(path.Child("items"), obj["items"], c)
		}
		return nil
	})

	ok := record.Object{"idx": record.Int(1), "items": record.List{record.Int(1), record.Int(2)}}
	assert.Nil(t, m.Validate(ok, nil, false))

	bad := record.Object{"idx": record.Int(5), "items": record.List{record.Int(1)}}
	v := m.Validate(bad, nil, false)
	require.NotNil(t, v)
	assert.Equal(t, KindDependency, v.Constraint.Kind)
	assert.Equal(t, "~/items", v.Path.String())
}

// =============================================================================
// Sequence
// =============================================================================

func TestSequenceBounds(t *testing.T) {
	s := Array(Number()).Min(1).Max(3)

	assert.Nil(t, s.Validate(record.List{record.Int(1)}, nil, false))

	v := s.Validate(record.List{}, nil, false)
	require.NotNil(t, v)
	assert.Equal(t, KindMin, v.Constraint.Kind)
	assert.Equal(t, "expected minimum 1 item(s) but got 0", v.Constraint.Message())

	v = s.Validate(record.List{record.Int(1), record.Int(2), record.Int(3), record.Int(4)}, nil, false)
	require.NotNil(t, v)
	assert.Equal(t, KindMax, v.Constraint.Kind)
}

func TestSequenceElementPaths(t *testing.T) {
	s := Array(Number().Ge(0))
	list := record.List{record.Int(1), record.Int(-1), record.Int(2), record.Int(-2)}

	v := s.Validate(list, nil, false)
	require.NotNil(t, v)
	leaves := v.Leaves()
	require.Len(t, leaves, 2)
	assert.Equal(t, "~/[1]", leaves[0].Path.String())
	assert.Equal(t, "~/[3]", leaves[1].Path.String())
}

func TestSequenceErrorCap(t *testing.T) {
	s := Array(Number().Ge(0)).Cap(3)
	list := make(record.List, 5)
	for i := range list {
		list[i] = record.Int(-1)
	}

	v := s.Validate(list, nil, false)
	require.NotNil(t, v)
	assert.Empty(t, v.Children())
	assert.Equal(t, KindTooMany, v.Constraint.Kind)
	assert.Equal(t, "too many errors, 5 found", v.Constraint.Message())
}

func TestSequenceUnderCapReportsIndividually(t *testing.T) {
	s := Array(Number().Ge(0)).Cap(3)
	list := record.List{record.Int(-1), record.Int(-1), record.Int(0)}

	v := s.Validate(list, nil, false)
	require.NotNil(t, v)
	assert.Len(t, v.Leaves(), 2)
}

func TestSequenceFailFastReturnsFirstElement(t *testing.T) {
	s := Array(Number().Ge(0))
	list := record.List{record.Int(1), record.Int(-1), record.Int(-2)}

	v := s.Validate(list, nil, true)
	require.NotNil(t, v)
	assert.Empty(t, v.Children())
	assert.Equal(t, "~/[1]", v.Path.String())
}

// =============================================================================
// Union
// =============================================================================

func TestUnionFirstMatchWins(t *testing.T) {
	u := Union(
		Mapping(F("kind", Mixed().OneOf("a").Required()), F("x", Number().Required())),
		Mapping(F("kind", Mixed().OneOf("b").Required()), F("y", Number().Required())),
	)

	assert.Nil(t, u.Validate(record.Object{"kind": record.String("a"), "x": record.Int(1)}, nil, false))
	assert.Nil(t, u.Validate(record.Object{"kind": record.String("b"), "y": record.Int(2)}, nil, false))
}

func TestUnionNoMatchAggregatesAttempts(t *testing.T) {
	u := Union(
		Mapping(F("kind", Mixed().OneOf("a").Required())),
		Mapping(F("kind", Mixed().OneOf("b").Required())),
	)

	v := u.Validate(record.Object{"kind": record.String("c")}, nil, false)
	require.NotNil(t, v)
	assert.Equal(t, KindUnion, v.Constraint.Kind)
	assert.Equal(t, "value matched no alternative", v.Constraint.Message())
	assert.Len(t, v.Children(), 2)
}

// =============================================================================
// Violation rendering
// =============================================================================

func TestViolationError(t *testing.T) {
	p := record.Path{}.Child("profile").Child("zero_x")
	c := NewConstraint(KindRange, nil, "expected value in range [-200000.0, 200000.0]")
	v := NewViolation(p, record.Int(900000), c)

	assert.Equal(t, "~/profile/zero_x: expected value in range [-200000.0, 200000.0]", v.Error())
}

func TestViolationFormat(t *testing.T) {
	p := record.Path{}.Child("profile").Child("zero_x")
	c := NewConstraint(KindRange, nil, "out of range")
	v := NewViolation(p, record.Int(900000), c)

	want := "Path    :  ~/profile/zero_x\n" +
		"Value   :  900000\n" +
		"Reason  :  out of range"
	assert.Equal(t, want, v.Format())
}

func TestConstraintLazyMessage(t *testing.T) {
	calls := 0
	c := NewConstraintf(KindMax, 50, func(args any) string {
		calls++
		return "lazy"
	})
	assert.Equal(t, 0, calls)
	assert.Equal(t, "lazy", c.Message())
	assert.Equal(t, 1, calls)
}
