package scs

import (
	"embed"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// NewI18n returns an initialized internationalization bundle with embedded
// locales, for rendering ParseFailure/CheckReport messages in a caller's
// preferred language.
func NewI18n() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)

	err := bundle.LoadFS(localesFS, "locales/*.json")

	return bundle, err
}

// Localizer is a convenience wrapper returning a ready-to-use *i18n.Localizer
// for locale, falling back to the bundle's default locale on an unknown
// tag.
func Localizer(bundle *i18n.I18n, locale string) *i18n.Localizer {
	return bundle.NewLocalizer(locale)
}
