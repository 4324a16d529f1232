package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileBasicObjectSchema(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"required": ["name"]
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{"name": "alice"}))
	assert.False(t, validator.IsValid(map[string]any{}))
	assert.False(t, validator.IsValid(map[string]any{"name": 1}))
}

func TestCompileRejectsUnknownSpecification(t *testing.T) {
	compiler := NewCompiler()
	_, err := compiler.Compile([]byte(`{"$schema": "https://example.com/not-a-real-draft"}`))
	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, ErrKindUnknownSpecification, schemaErr.Kind)
}

func TestCompileHonorsPerDocumentSchemaKeyword(t *testing.T) {
	compiler := NewCompiler(WithDraft(Draft2020))
	// Draft 4 spells exclusiveMinimum as a boolean sibling of minimum,
	// not a standalone numeric keyword - if this schema were compiled
	// as 2020-12 its "exclusiveMinimum": true would be skipped as a
	// non-numeric value, leaving minimum inclusive and 0 valid.
	validator, err := compiler.Compile([]byte(`{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"minimum": 0,
		"exclusiveMinimum": true
	}`))
	require.NoError(t, err)
	assert.False(t, validator.IsValid(0))
	assert.True(t, validator.IsValid(1))
}

func TestCompileBatchResolvesMutualRefsRegardlessOfOrder(t *testing.T) {
	compiler := NewCompiler()
	docs := map[string][]byte{
		"https://example.com/a": []byte(`{
			"$id": "https://example.com/a",
			"type": "object",
			"properties": {"b": {"$ref": "https://example.com/b"}}
		}`),
		"https://example.com/b": []byte(`{
			"$id": "https://example.com/b",
			"type": "object",
			"properties": {"a": {"$ref": "https://example.com/a"}}
		}`),
	}
	validators, err := compiler.CompileBatch(docs)
	require.NoError(t, err)
	require.Contains(t, validators, "https://example.com/a")
	require.Contains(t, validators, "https://example.com/b")

	a := validators["https://example.com/a"]
	assert.True(t, a.IsValid(map[string]any{"b": map[string]any{"a": map[string]any{}}}))
	assert.False(t, a.IsValid(map[string]any{"b": map[string]any{"a": "not an object"}}))
}

func TestCompileRefCycleConverges(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"$id": "https://example.com/cycle",
		"$defs": {
			"node": {
				"type": "object",
				"properties": {
					"next": {"$ref": "#/$defs/node"}
				}
			}
		},
		"$ref": "#/$defs/node"
	}`))
	require.NoError(t, err)
	assert.True(t, validator.IsValid(map[string]any{"next": map[string]any{"next": map[string]any{}}}))
	assert.False(t, validator.IsValid(map[string]any{"next": "not an object"}))
}

func TestWithResourcePreRegistersSchemaForRef(t *testing.T) {
	compiler := NewCompiler(WithResource("https://example.com/positive", map[string]any{
		"type":    "number",
		"minimum": 0,
	}))
	validator, err := compiler.Compile([]byte(`{
		"type": "object",
		"properties": {"score": {"$ref": "https://example.com/positive"}}
	}`))
	require.NoError(t, err)
	assert.True(t, validator.IsValid(map[string]any{"score": 1}))
	assert.False(t, validator.IsValid(map[string]any{"score": -1}))
}
