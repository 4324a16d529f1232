package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizeFallsBackToMessageWithNilLocalizer(t *testing.T) {
	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{"type": "string"}`))
	require.NoError(t, err)

	result := validator.Validate(1)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)

	localized := result.Errors[0].Localize(nil)
	assert.Equal(t, result.Errors[0].Error(), localized)
}

func TestLocalizeTranslatesThroughEmbeddedBundle(t *testing.T) {
	bundle, err := NewI18nBundle()
	require.NoError(t, err)

	compiler := NewCompiler()
	validator, err := compiler.Compile([]byte(`{"type": "string"}`))
	require.NoError(t, err)

	result := validator.Validate(1)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)

	zh := bundle.NewLocalizer("zh-Hans")
	localizedZh := result.Errors[0].Localize(zh)
	assert.NotEmpty(t, localizedZh)
	assert.NotEqual(t, result.Errors[0].Error(), localizedZh,
		"the zh-Hans catalog should produce a different string than the raw English message")

	en := bundle.NewLocalizer("en")
	localizedEn := result.Errors[0].Localize(en)
	assert.NotEmpty(t, localizedEn)
}
