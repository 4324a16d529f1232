package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnevaluatedPropertiesRejectsUnclaimedProperty(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"unevaluatedProperties": false
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{"name": "alice"}))
	assert.False(t, validator.IsValid(map[string]any{"name": "alice", "extra": 1}))

	result := validator.Validate(map[string]any{"name": "alice", "extra": 1})
	require.NotEmpty(t, result.Errors, "unevaluatedProperties must raise its own error, not just fail via the rejecting sub-schema")
	assert.Equal(t, KindUnevaluatedProperties, result.Errors[0].Kind)
	assert.Equal(t, []string{"extra"}, result.Errors[0].Params["keys"])
}

func TestUnevaluatedPropertiesSeesAnnotationsThroughRef(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"$defs": {
			"named": {"properties": {"name": {"type": "string"}}}
		},
		"allOf": [{"$ref": "#/$defs/named"}],
		"unevaluatedProperties": false
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{"name": "alice"}),
		"properties claimed by a schema reached through allOf+$ref should still count as evaluated")
	assert.False(t, validator.IsValid(map[string]any{"name": "alice", "extra": 1}))
}

// TestExplicitAdditionalPropertiesTrueSatisfiesUnevaluatedProperties
// documents this module's resolution of an Open Question: an explicit
// "additionalProperties": true still builds a keyword whose only job is
// to mark every non-declared property "evaluated", so a sibling
// "unevaluatedProperties": false does not then reject them again.
func TestExplicitAdditionalPropertiesTrueSatisfiesUnevaluatedProperties(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"additionalProperties": true,
		"unevaluatedProperties": false
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{"name": "alice", "extra": 1}))
}

func TestUnevaluatedItemsRejectsUnclaimedElement(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"prefixItems": [{"type": "string"}],
		"unevaluatedItems": false
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid([]any{"a"}))
	assert.False(t, validator.IsValid([]any{"a", "b"}))

	result := validator.Validate([]any{"a", "b"})
	require.NotEmpty(t, result.Errors, "unevaluatedItems must raise its own error, not just fail via the rejecting sub-schema")
	assert.Equal(t, KindUnevaluatedItems, result.Errors[0].Kind)
	assert.Equal(t, []int{1}, result.Errors[0].Params["indices"])
}

func TestThenBranchAnnotationsOnlyCountWhenTaken(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"type": "object",
		"properties": {"kind": {"type": "string"}},
		"if": {"properties": {"kind": {"const": "a"}}},
		"then": {"properties": {"payload": {"type": "string"}}},
		"unevaluatedProperties": false
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{"kind": "a", "payload": "x"}),
		"then's properties claim payload when if's probe matched")
	assert.False(t, validator.IsValid(map[string]any{"kind": "b", "payload": "x"}),
		"if's probe failing means then never runs, so payload stays unclaimed")
}
