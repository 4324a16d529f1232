package jsonschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildComposesACompilableSchema(t *testing.T) {
	doc := Build(
		Type("object"),
		Properties(map[string]any{
			"name": Build(Type("string"), MinLength(1)),
			"age":  Build(Type("integer"), Minimum(0)),
		}),
		Required("name"),
		AdditionalProperties(false),
	)
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	compiler := NewCompiler()
	validator, err := compiler.Compile(raw)
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{"name": "alice", "age": 30}))
	assert.False(t, validator.IsValid(map[string]any{"age": 30}), "name is required")
	assert.False(t, validator.IsValid(map[string]any{"name": "", "age": 30}), "name violates minLength")
	assert.False(t, validator.IsValid(map[string]any{"name": "alice", "extra": true}), "additionalProperties is false")
}

func TestBuildComposesRefAndDefs(t *testing.T) {
	doc := Build(
		ID("https://example.com/builder-ref"),
		Defs(map[string]any{
			"positive": Build(Type("number"), Minimum(0)),
		}),
		Ref("#/$defs/positive"),
	)
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	compiler := NewCompiler()
	validator, err := compiler.Compile(raw)
	require.NoError(t, err)

	assert.True(t, validator.IsValid(1))
	assert.False(t, validator.IsValid(-1))
}
