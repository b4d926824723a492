package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYAML(t *testing.T) {
	doc := []byte(`
profile:
  profile_name: Sako TRG 22
  zero_x: -1500
  distances: [10000, 20000]
  valid: true
  note: null
`)
	v, err := Decode(doc)
	require.NoError(t, err)

	root, ok := v.(Object)
	require.True(t, ok)
	prof := root["profile"].(Object)

	assert.Equal(t, String("Sako TRG 22"), prof["profile_name"])
	assert.Equal(t, Int(-1500), prof["zero_x"])
	assert.Equal(t, List{Int(10000), Int(20000)}, prof["distances"])
	assert.Equal(t, Bool(true), prof["valid"])
	assert.Equal(t, Null{}, prof["note"])
}

func TestDecodeJSON(t *testing.T) {
	// YAML is a superset of JSON, one decoder serves both.
	doc := []byte(`{"profile": {"c_muzzle_velocity": 8250, "c_t_coeff": 1.5}}`)

	v, err := Decode(doc)
	require.NoError(t, err)

	prof := v.(Object)["profile"].(Object)
	assert.Equal(t, Int(8250), prof["c_muzzle_velocity"])
	assert.Equal(t, Float(1.5), prof["c_t_coeff"])
}

func TestDecodeIntegralFloatBecomesInt(t *testing.T) {
	// json decodes every number as float64; integral values must come back
	// as Int so scaled quantities stay integers.
	v, err := FromGo(map[string]any{"mv": float64(8000)})
	require.NoError(t, err)
	assert.Equal(t, Int(8000), v.(Object)["mv"])
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte("{unclosed"))
	assert.Error(t, err)
}

func TestFromGoUnsupportedType(t *testing.T) {
	_, err := FromGo(struct{}{})
	assert.Error(t, err)
}

func TestEncodeRoundtrip(t *testing.T) {
	orig := Object{
		"profile": Object{
			"profile_name": String("test"),
			"zero_x":       Int(-1500),
			"distances":    List{Int(10000), Int(25000)},
		},
	}

	data, err := Encode(orig)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestEncodeJSON(t *testing.T) {
	data, err := EncodeJSON(Object{"mv": Int(8000)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mv": 8000}`, string(data))
}
