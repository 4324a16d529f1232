package jsonschema

import (
	"embed"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// NewI18nBundle returns an initialized internationalization bundle with
// the embedded locale catalogs, keyed by ValidationError.Kind (spec §7's
// error kinds double as translation keys, matching the teacher's
// Code-as-translation-key convention).
func NewI18nBundle() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Localize renders e's message through localizer, substituting e.Params
// as translation variables; with a nil localizer it falls back to
// e.Error() (kind, instance location and English message), so callers
// that never set up i18n see the same text the error prints.
func (e *ValidationError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return e.Error()
	}
	return localizer.Get(e.Kind, i18n.Vars(e.Params))
}
