package record

import "fmt"

// Value is a sealed interface representing one node of a generic profile
// record: a tree of objects, lists and scalars. Only Null, String, Int,
// Float, Bool, List, and Object implement it. The validation engine matches
// exhaustively on these kinds instead of reflecting on arbitrary Go values.
type Value interface {
	recordValue() // sealed
}

// Null represents an explicit null value.
type Null struct{}

func (Null) recordValue() {}

// String represents a string scalar.
type String string

func (String) recordValue() {}

// Int represents an integer scalar. Scaled physical quantities are always
// stored as Int; the schema recovers the real-world unit via a divisor.
type Int int64

func (Int) recordValue() {}

// Float represents a floating point scalar.
type Float float64

func (Float) recordValue() {}

// Bool represents a boolean scalar.
type Bool bool

func (Bool) recordValue() {}

// List represents an ordered sequence of values.
type List []Value

func (List) recordValue() {}

// Object represents a keyed mapping of field names to values.
// Iteration order is supplied by the schema's declaration order, never by
// the map itself.
type Object map[string]Value

func (Object) recordValue() {}

// Kind identifies the generic kind of a Value, used in type violations.
type Kind string

const (
	KindNull   Kind = "null"
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindList   Kind = "array"
	KindObject Kind = "object"
)

// KindOf returns the generic kind of v. Int and Float share KindNumber:
// the schema layer does not distinguish them, a stored integer may arrive
// as either after decoding.
func KindOf(v Value) Kind {
	switch v.(type) {
	case Null:
		return KindNull
	case String:
		return KindString
	case Int, Float:
		return KindNumber
	case Bool:
		return KindBool
	case List:
		return KindList
	case Object:
		return KindObject
	default:
		panic(fmt.Sprintf("record: unknown value type %T", v))
	}
}

// IsNull reports whether v is the explicit null value.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return v == nil || ok
}

// Number returns the numeric value of v as a float64.
// The second return is false when v is not a number.
func Number(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true
	case Float:
		return float64(n), true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of v. Lists and objects are copied recursively,
// scalars are returned as-is.
func Clone(v Value) Value {
	switch t := v.(type) {
	case List:
		out := make(List, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	case Object:
		out := make(Object, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}
		return out
	default:
		return v
	}
}

// Lookup descends from root along the field-name steps of p and returns the
// value found there. Index steps are skipped, so a path addressing one
// element of an array resolves to the whole array; this matches how
// recovery snapshots collection values around a fix. The second return is
// false when a named field is missing.
func Lookup(root Value, p Path) (Value, bool) {
	cur := root
	for _, step := range p {
		if step.indexed {
			continue
		}
		obj, ok := cur.(Object)
		if !ok {
			return nil, false
		}
		next, ok := obj[step.key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
