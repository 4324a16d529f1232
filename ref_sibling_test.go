package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLegacyRefSuppressesSiblingKeywords exercises draft 4-7's rule that a
// "$ref" present on a schema object makes every sibling keyword on that
// same object dead: only the referenced schema is actually checked.
func TestLegacyRefSuppressesSiblingKeywords(t *testing.T) {
	compiler := NewCompiler(WithDraft(Draft7))
	validator, err := compiler.Compile([]byte(`{
		"$defs": {"str": {"type": "string"}},
		"$ref": "#/$defs/str",
		"minLength": 100
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid("short"),
		"minLength is a sibling of $ref and must be ignored under the legacy draft's suppression rule")
	assert.False(t, validator.IsValid(5), "the referenced schema itself is still enforced")
}

// TestModernRefCoexistsWithSiblingKeywords documents the 2019-09+
// behavior change: $ref is just another applicator, evaluated alongside
// whatever else is declared on the same object.
func TestModernRefCoexistsWithSiblingKeywords(t *testing.T) {
	compiler := NewCompiler(WithDraft(Draft2020))
	validator, err := compiler.Compile([]byte(`{
		"$defs": {"str": {"type": "string"}},
		"$ref": "#/$defs/str",
		"minLength": 3
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid("abc"))
	assert.False(t, validator.IsValid("ab"), "minLength now applies alongside $ref")
	assert.False(t, validator.IsValid(5))
}
