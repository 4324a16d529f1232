package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOfRequiresEveryBranch(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"allOf": [{"type": "number"}, {"minimum": 0}, {"maximum": 10}]
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(5))
	assert.False(t, validator.IsValid(-1))
	assert.False(t, validator.IsValid("not a number"))
}

func TestAnyOfRequiresAtLeastOneBranch(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"anyOf": [{"type": "string"}, {"type": "number"}]
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid("hello"))
	assert.True(t, validator.IsValid(5))
	assert.False(t, validator.IsValid(true))
}

func TestOneOfRejectsZeroOrMultipleMatches(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"oneOf": [{"type": "number", "multipleOf": 2}, {"type": "number", "multipleOf": 3}]
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(4), "multiple of 2 only")
	assert.True(t, validator.IsValid(9), "multiple of 3 only")
	assert.False(t, validator.IsValid(6), "multiple of both, matches twice")
	assert.False(t, validator.IsValid(5), "matches neither")
}

func TestNotRejectsAMatchingInstance(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{"not": {"type": "string"}}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(5))
	assert.False(t, validator.IsValid("a string"))
}

func TestIfThenElseAppliesTheMatchingBranch(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"if": {"type": "string"},
		"then": {"minLength": 3},
		"else": {"type": "number"}
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid("abc"))
	assert.False(t, validator.IsValid("ab"), "then branch applies since it's a string")
	assert.True(t, validator.IsValid(5))
	assert.False(t, validator.IsValid(true), "else branch applies since it's not a string")
}
