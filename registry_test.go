package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryWithSharesParentResourcesWithoutCopying(t *testing.T) {
	parent := NewRegistry(nil)
	require.NoError(t, parent.RegisterResource("https://example.com/base", map[string]any{
		"type": "string",
	}, Draft2020))

	child := parent.With()
	require.NoError(t, child.RegisterResource("https://example.com/extra", map[string]any{
		"type": "number",
	}, Draft2020))

	// the child sees both its own and the parent's resources
	res, err := child.Resource("https://example.com/base")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/base", res.URI)

	res, err = child.Resource("https://example.com/extra")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/extra", res.URI)

	// the parent never sees what was registered into the child
	_, err = parent.Resource("https://example.com/extra")
	require.Error(t, err)
	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, ErrKindNoSuchResource, refErr.Kind)
}

func TestRegistryResourceFallsBackToRetriever(t *testing.T) {
	calls := 0
	retriever := func(uri string) (any, error) {
		calls++
		return map[string]any{"type": "boolean"}, nil
	}
	reg := NewRegistry(retriever)

	res, err := reg.Resource("https://example.com/remote")
	require.NoError(t, err)
	assert.Equal(t, DefaultDraft, res.Draft)

	// a second lookup hits the now-registered resource, not the retriever again
	_, err = reg.Resource("https://example.com/remote")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRegistryResourceWithoutRetrieverIsNoSuchResource(t *testing.T) {
	reg := NewRegistry(nil)
	_, err := reg.Resource("https://example.com/missing")
	require.Error(t, err)
	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, ErrKindNoSuchResource, refErr.Kind)
}

func TestRegistryDuplicateAnchorWithDifferentTargetsErrors(t *testing.T) {
	reg := NewRegistry(nil)
	err := reg.RegisterResource("https://example.com/dup", map[string]any{
		"$defs": map[string]any{
			"a": map[string]any{"$anchor": "shared", "type": "string"},
			"b": map[string]any{"$anchor": "shared", "type": "number"},
		},
	}, Draft2020)
	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, ErrKindDuplicateAnchor, schemaErr.Kind)
}

func TestRegistryAnchorLookupMissingIsNoSuchAnchor(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.RegisterResource("https://example.com/base", map[string]any{
		"type": "string",
	}, Draft2020))

	_, err := reg.Anchor("https://example.com/base", "nope", false)
	require.Error(t, err)
	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, ErrKindNoSuchAnchor, refErr.Kind)
}

func TestRegistryResolveAgainstMemoizes(t *testing.T) {
	reg := NewRegistry(nil)
	first, err := reg.ResolveAgainst("https://example.com/base/", "child")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/base/child", first)

	second, err := reg.ResolveAgainst("https://example.com/base/", "child")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
