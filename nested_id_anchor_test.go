package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnchorUnderNestedIDResolvesAgainstItsOwnResource guards the anchor
// target pointer being relative to the resource it was found in, not the
// document root: a sub-schema that declares its own "$id" starts a new
// resource whose own root is that sub-schema's own value, so an "$anchor"
// declared right on it must resolve to "" (not to wherever that
// sub-schema happens to sit in the outer document).
func TestAnchorUnderNestedIDResolvesAgainstItsOwnResource(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"$id": "https://example.com/root",
		"$defs": {
			"A": {
				"$id": "https://example.com/sub",
				"$anchor": "x",
				"type": "string"
			}
		},
		"properties": {
			"value": {"$ref": "https://example.com/sub#x"}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(map[string]any{"value": "hello"}))
	assert.False(t, validator.IsValid(map[string]any{"value": 1}))
}

// TestAnchorUnderDoublyNestedIDUsesImmediateResourceRoot checks that the
// relative-pointer reset happens at every "$id" boundary, not just the
// first one below the document root.
func TestAnchorUnderDoublyNestedIDUsesImmediateResourceRoot(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"$id": "https://example.com/root",
		"$defs": {
			"outer": {
				"$id": "https://example.com/outer",
				"$defs": {
					"inner": {
						"$id": "https://example.com/inner",
						"$anchor": "leaf",
						"type": "number"
					}
				}
			}
		},
		"$ref": "https://example.com/inner#leaf"
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid(5))
	assert.False(t, validator.IsValid("not a number"))
}
