package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternPropertiesAppliesToMatchingNames(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"type": "object",
		"patternProperties": {
			"^S_": {"type": "string"},
			"^N_": {"type": "number"}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{"S_name": "alice", "N_age": 30}))
	assert.False(t, validator.IsValid(map[string]any{"S_name": 1}))
}

func TestPropertyNamesConstrainsEveryKey(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"type": "object",
		"propertyNames": {"pattern": "^[a-z]+$"}
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{"abc": 1}))
	assert.False(t, validator.IsValid(map[string]any{"ABC": 1}))
}

func TestDependentRequiredEnforcesCoPresence(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"type": "object",
		"dependentRequired": {"creditCard": ["billingAddress"]}
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{}))
	assert.True(t, validator.IsValid(map[string]any{"creditCard": "1234", "billingAddress": "x"}))
	assert.False(t, validator.IsValid(map[string]any{"creditCard": "1234"}))
}

func TestDependentSchemasAppliesWholeSchemaConditionally(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"type": "object",
		"dependentSchemas": {
			"creditCard": {"required": ["billingAddress"]}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{}))
	assert.False(t, validator.IsValid(map[string]any{"creditCard": "1234"}))
}

func TestLegacyDependenciesSupportsBothForms(t *testing.T) {
	compiler := NewCompiler(WithDraft(Draft7))
	validator, err := compiler.Compile([]byte(`{
		"type": "object",
		"dependencies": {
			"creditCard": ["billingAddress"],
			"shipping": {"required": ["address"]}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{"creditCard": "1234", "billingAddress": "x"}))
	assert.False(t, validator.IsValid(map[string]any{"creditCard": "1234"}))
	assert.False(t, validator.IsValid(map[string]any{"shipping": "fedex"}))
}
