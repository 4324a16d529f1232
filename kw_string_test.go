package jsonschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringLengthCountsCodePointsNotBytes(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{"type": "string", "minLength": 3, "maxLength": 3}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid("日本語"), "three multi-byte runes, exactly three characters")
	assert.False(t, validator.IsValid("日本"))
	assert.False(t, validator.IsValid("日本語語"))
}

func TestPatternRejectsNonMatchingString(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{"type": "string", "pattern": "^[0-9]+$"}`))
	require.NoError(t, err)

	assert.True(t, validator.IsValid("12345"))
	assert.False(t, validator.IsValid("12a45"))
}

func TestPatternRejectsUnsupportedLookaroundAtCompileTime(t *testing.T) {
	compiler := NewCompiler()
	_, err := compiler.Compile([]byte(`{"type": "string", "pattern": "(?=foo)bar"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRegexUnsupported))
}

func TestPatternRejectsBackreferenceAtCompileTime(t *testing.T) {
	compiler := NewCompiler()
	_, err := compiler.Compile([]byte(`{"type": "string", "pattern": "(foo)\\1"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRegexUnsupported))
}
