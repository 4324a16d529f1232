package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayLengthAndUniqueItems(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"type": "array",
		"minItems": 2,
		"maxItems": 3,
		"uniqueItems": true
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid([]any{1, 2}))
	assert.False(t, validator.IsValid([]any{1}), "below minItems")
	assert.False(t, validator.IsValid([]any{1, 2, 3, 4}), "above maxItems")
	assert.False(t, validator.IsValid([]any{1, 2, 2}), "duplicate items")
}

func TestContainsWithMinAndMaxContains(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"type": "array",
		"contains": {"type": "number"},
		"minContains": 2,
		"maxContains": 3
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid([]any{"a", 1, 2}))
	assert.False(t, validator.IsValid([]any{"a", 1}), "only one number, needs at least two")
	assert.False(t, validator.IsValid([]any{1, 2, 3, 4}), "four numbers exceed maxContains")
}

func TestPrefixItemsWithItemsAsTheCatchAll(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "array",
		"prefixItems": [{"type": "string"}, {"type": "number"}],
		"items": {"type": "boolean"}
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid([]any{"a", 1, true, false}))
	assert.False(t, validator.IsValid([]any{"a", 1, "not a boolean"}))
	assert.False(t, validator.IsValid([]any{1, "a"}), "prefixItems order violated")
}

func TestLegacyPositionalItemsWithAdditionalItemsFalse(t *testing.T) {
	compiler := NewCompiler(WithDraft(Draft7))
	validator, err := compiler.Compile([]byte(`{
		"type": "array",
		"items": [{"type": "string"}, {"type": "number"}],
		"additionalItems": false
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid([]any{"a", 1}))
	assert.False(t, validator.IsValid([]any{"a", 1, "extra"}), "additionalItems: false forbids a third element")
}

// TestLegacyAdditionalItemsSatisfiesUnevaluatedItems guards the 2019-09
// coexistence of positional items+additionalItems with unevaluatedItems:
// elements covered by additionalItems must count as evaluated, not get
// re-checked (and rejected) by unevaluatedItems.
func TestLegacyAdditionalItemsSatisfiesUnevaluatedItems(t *testing.T) {
	compiler := NewCompiler(WithDraft(Draft2019))
	validator, err := compiler.Compile([]byte(`{
		"type": "array",
		"items": [{"type": "string"}],
		"additionalItems": {"type": "number"},
		"unevaluatedItems": false
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid([]any{"a", 1, 2}),
		"the tail elements are claimed by additionalItems, so unevaluatedItems must not reject them")
	assert.False(t, validator.IsValid([]any{"a", "not a number"}),
		"additionalItems' own schema still rejects a non-number tail element")
}
