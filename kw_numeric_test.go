package jsonschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultipleOfUsesExactRationalArithmetic guards against the float64
// rounding error that makes naive "0.29 / 0.01" implementations reject
// a value that is, mathematically, an exact multiple.
func TestMultipleOfUsesExactRationalArithmetic(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{"type": "number", "multipleOf": 0.01}`))
	require.NoError(t, err)

	var instance any
	require.NoError(t, json.Unmarshal([]byte("0.29"), &instance))
	assert.True(t, validator.IsValid(instance))

	require.NoError(t, json.Unmarshal([]byte("0.291"), &instance))
	assert.False(t, validator.IsValid(instance))
}

func TestIntegerTypeAcceptsZeroFractionNumber(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{"type": "integer"}`))
	require.NoError(t, err)

	var wholeAsFloat any
	require.NoError(t, json.Unmarshal([]byte("4.0"), &wholeAsFloat))
	assert.True(t, validator.IsValid(wholeAsFloat), "4.0 has a zero fractional part, so it satisfies \"integer\"")

	var fractional any
	require.NoError(t, json.Unmarshal([]byte("4.5"), &fractional))
	assert.False(t, validator.IsValid(fractional))
}

func TestDraft4ExclusiveMinimumIsABooleanModifier(t *testing.T) {
	compiler := NewCompiler(WithDraft(Draft4))
	validator, err := compiler.Compile([]byte(`{"minimum": 5, "exclusiveMinimum": true}`))
	require.NoError(t, err)

	assert.False(t, validator.IsValid(5))
	assert.True(t, validator.IsValid(6))
}

func TestConstAndEnumCompareAcrossNumericLanes(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{"const": 1}`))
	require.NoError(t, err)

	var asFloat any
	require.NoError(t, json.Unmarshal([]byte("1.0"), &asFloat))
	assert.True(t, validator.IsValid(asFloat), "const: 1 should accept the instance 1.0")

	enumValidator, err := compiler.Compile([]byte(`{"enum": [1, "two", null]}`))
	require.NoError(t, err)
	assert.True(t, enumValidator.IsValid(1))
	assert.True(t, enumValidator.IsValid("two"))
	assert.True(t, enumValidator.IsValid(nil))
	assert.False(t, enumValidator.IsValid("three"))
}
