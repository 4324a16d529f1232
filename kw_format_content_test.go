package jsonschema

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIsAnnotationOnlyByDefault(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{"type": "string", "format": "email"}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid("not-an-email"),
		"without WithAssertFormat, format never rejects an instance")
}

func TestFormatAssertedWhenConfigured(t *testing.T) {
	compiler := NewCompiler(WithAssertFormat(true))
	validator, err := compiler.Compile([]byte(`{"type": "string", "format": "email"}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid("alice@example.com"))
	assert.False(t, validator.IsValid("not-an-email"))
}

func TestFormatUnrecognizedNameAcceptedLeniently(t *testing.T) {
	compiler := NewCompiler(WithAssertFormat(true))
	validator, err := compiler.Compile([]byte(`{"type": "string", "format": "x-made-up-format"}`))
	require.NoError(t, err)
	assert.True(t, validator.IsValid("anything at all"))
}

func TestIDNHostnameFormat(t *testing.T) {
	compiler := NewCompiler(WithAssertFormat(true))
	validator, err := compiler.Compile([]byte(`{"type": "string", "format": "idn-hostname"}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid("example.com"))
	assert.True(t, validator.IsValid("müller.example"), "a genuine unicode hostname, accepted via punycode round-trip")
	assert.False(t, validator.IsValid("not a hostname"))
}

func TestContentEncodingAndMediaTypeAreAnnotationOnlyByDefault(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{
		"type": "string",
		"contentEncoding": "base64",
		"contentMediaType": "application/json"
	}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid("not valid base64!!"),
		"without WithAssertContent, contentEncoding/contentMediaType never reject")
}

func TestContentAssertedWithContentSchema(t *testing.T) {
	compiler := NewCompiler(WithAssertContent(true))
	validator, err := compiler.Compile([]byte(`{
		"type": "string",
		"contentEncoding": "base64",
		"contentMediaType": "application/json",
		"contentSchema": {"type": "object", "required": ["ok"]}
	}`))
	require.NoError(t, err)

	valid := base64.StdEncoding.EncodeToString([]byte(`{"ok": true}`))
	invalidJSON := base64.StdEncoding.EncodeToString([]byte(`{"not-ok": true}`))

	assert.True(t, validator.IsValid(valid))
	assert.False(t, validator.IsValid(invalidJSON), "decoded content fails contentSchema's required")
	assert.False(t, validator.IsValid("!!!not-base64!!!"), "fails to decode at all")
}
