package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDynamicRefExtensibleList mirrors the canonical 2020-12 "extensible
// list" example: a generic list schema that delegates per-item
// validation to whatever $dynamicAnchor "item" the outermost schema in
// the dynamic scope defines, letting a schema that extends the list
// override what counts as a valid item without touching the list schema
// itself.
func TestDynamicRefExtensibleList(t *testing.T) {
	compiler := NewCompiler()
	docs := map[string][]byte{
		"https://example.com/list": []byte(`{
			"$id": "https://example.com/list",
			"$schema": "https://json-schema.org/draft/2020-12/schema",
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {"$dynamicRef": "#item"}
				}
			},
			"$defs": {
				"item": {"$dynamicAnchor": "item"}
			}
		}`),
		"https://example.com/stringlist": []byte(`{
			"$id": "https://example.com/stringlist",
			"$schema": "https://json-schema.org/draft/2020-12/schema",
			"$ref": "https://example.com/list",
			"$defs": {
				"item": {"$dynamicAnchor": "item", "type": "string"}
			}
		}`),
	}
	validators, err := compiler.CompileBatch(docs)
	require.NoError(t, err)

	list := validators["https://example.com/list"]
	assert.True(t, list.IsValid(map[string]any{"items": []any{1, "two", true}}),
		"the generic list schema accepts any item type")

	strings := validators["https://example.com/stringlist"]
	assert.True(t, strings.IsValid(map[string]any{"items": []any{"a", "b"}}))
	assert.False(t, strings.IsValid(map[string]any{"items": []any{"a", 1}}),
		"stringlist's own $dynamicAnchor item should win over list's generic one")
}

// TestRecursiveRefLegacyTree exercises 2019-09's $recursiveRef/
// $recursiveAnchor pair, which this module supports alongside 2020-12's
// $dynamicRef/$dynamicAnchor.
func TestRecursiveRefLegacyTree(t *testing.T) {
	compiler := NewCompiler()
	docs := map[string][]byte{
		"https://example.com/tree": []byte(`{
			"$id": "https://example.com/tree",
			"$schema": "https://json-schema.org/draft/2019-09/schema",
			"$recursiveAnchor": true,
			"type": "object",
			"properties": {
				"data": true,
				"children": {"type": "array", "items": {"$recursiveRef": "#"}}
			}
		}`),
		"https://example.com/strict-tree": []byte(`{
			"$id": "https://example.com/strict-tree",
			"$schema": "https://json-schema.org/draft/2019-09/schema",
			"$recursiveAnchor": true,
			"$ref": "https://example.com/tree",
			"properties": {
				"data": {"type": "string"}
			}
		}`),
	}
	validators, err := compiler.CompileBatch(docs)
	require.NoError(t, err)

	strict := validators["https://example.com/strict-tree"]
	assert.True(t, strict.IsValid(map[string]any{
		"data":     "root",
		"children": []any{map[string]any{"data": "child"}},
	}))
	assert.False(t, strict.IsValid(map[string]any{
		"data":     "root",
		"children": []any{map[string]any{"data": 5}},
	}), "nested $recursiveRef should resolve against strict-tree's own root, not tree's")
}
