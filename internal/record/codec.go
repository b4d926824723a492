package record

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode parses a YAML or JSON profile document into a generic Value tree.
// YAML is a superset of JSON here, so both formats go through the same
// decoder. Numbers without a fractional part decode as Int.
func Decode(data []byte) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("record: decode failed: %w", err)
	}
	return FromGo(raw)
}

// Encode renders a Value tree back into a YAML document.
func Encode(v Value) ([]byte, error) {
	data, err := yaml.Marshal(ToGo(v))
	if err != nil {
		return nil, fmt.Errorf("record: encode failed: %w", err)
	}
	return data, nil
}

// EncodeJSON renders a Value tree as indented JSON.
func EncodeJSON(v Value) ([]byte, error) {
	data, err := json.MarshalIndent(ToGo(v), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("record: encode failed: %w", err)
	}
	return data, nil
}

// FromGo converts a decoded interface tree (as produced by yaml or json
// unmarshalling) into a Value tree. Unsupported Go types are an error, not
// a panic: the input is untrusted.
func FromGo(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null{}, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(t), nil
	case int64:
		return Int(t), nil
	case uint64:
		return Int(t), nil
	case float64:
		// json decodes every number as float64; keep integral values as Int
		// so scaled quantities stay integers.
		if t == float64(int64(t)) {
			return Int(int64(t)), nil
		}
		return Float(t), nil
	case []any:
		out := make(List, len(t))
		for i, e := range t {
			v, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case map[string]any:
		out := make(Object, len(t))
		for k, e := range t {
			v, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("record: unsupported value type %T", raw)
	}
}

// ToGo converts a Value tree into plain Go values suitable for yaml/json
// marshalling.
func ToGo(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case String:
		return string(t)
	case Int:
		return int64(t)
	case Float:
		return float64(t)
	case Bool:
		return bool(t)
	case List:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = ToGo(e)
		}
		return out
	case Object:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = ToGo(e)
		}
		return out
	default:
		panic(fmt.Sprintf("record: unknown value type %T", v))
	}
}
