// Package i18n provides localized message catalogs for notification and
// email texts. Catalogs are YAML files embedded at build time, one per
// supported language. Supported languages are Uzbek (Latin), Uzbek
// (Cyrillic) and Russian.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Lang identifies a supported catalog language.
type Lang string

const (
	UzLatin Lang = "uz"
	UzCyrl  Lang = "uz-cyrl"
	RU      Lang = "ru"
)

// DefaultLang is used when no supported language matches.
const DefaultLang = UzLatin

var supported = []language.Tag{
	language.MustParse("uz-Latn"), // uz
	language.MustParse("uz-Cyrl"), // uz-cyrl
	language.Russian,              // ru
}

var matcher = language.NewMatcher(supported)

var langByIndex = []Lang{UzLatin, UzCyrl, RU}

// MatchLang resolves an Accept-Language header value (or a stored user
// preference) to a supported catalog language.
func MatchLang(acceptLanguage string) Lang {
	if acceptLanguage == "" {
		return DefaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	return langByIndex[idx]
}

// ParseLang parses a stored language string, defaulting to Uzbek Latin.
func ParseLang(s string) Lang {
	switch Lang(s) {
	case UzCyrl:
		return UzCyrl
	case RU:
		return RU
	}
	return UzLatin
}

type catalog map[string]string

var (
	catalogs     map[Lang]catalog
	catalogsOnce sync.Once
	catalogsErr  error
)

func loadCatalogs() {
	catalogs = make(map[Lang]catalog, len(langByIndex))
	for _, lang := range langByIndex {
		data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.yaml", lang))
		if err != nil {
			catalogsErr = fmt.Errorf("read locale %s: %w", lang, err)
			return
		}
		var c catalog
		if err := yaml.Unmarshal(data, &c); err != nil {
			catalogsErr = fmt.Errorf("parse locale %s: %w", lang, err)
			return
		}
		catalogs[lang] = c
	}
}

// T looks up a message key in the catalog for lang and formats it with
// args. Missing keys fall back to the default language, then to the key
// itself so a broken catalog never produces empty user-facing text.
func T(lang Lang, key string, args ...any) string {
	catalogsOnce.Do(loadCatalogs)
	if catalogsErr != nil {
		return key
	}
	msg, ok := catalogs[lang][key]
	if !ok {
		msg, ok = catalogs[DefaultLang][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
