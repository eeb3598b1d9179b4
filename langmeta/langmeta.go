// Package langmeta provides a shared language metadata registry
// (native names and emoji flags) used across output formats and CLI UI.
package langmeta

import (
	"strings"

	"github.com/minios-linux/gocat"
)

// Meta describes language display metadata.
type Meta struct {
	Name string
	Flag string
}

// Registry contains canonical language metadata, carried from the
// i18next LangMeta table.
// Locale variants are resolved in Resolve() via normalization and base fallback.
var Registry = map[string]Meta{
	"en":    {Name: "English", Flag: "🇺🇸"},
	"ru":    {Name: "Русский", Flag: "🇷🇺"},
	"de":    {Name: "Deutsch", Flag: "🇩🇪"},
	"es":    {Name: "Español", Flag: "🇪🇸"},
	"fr":    {Name: "Français", Flag: "🇫🇷"},
	"it":    {Name: "Italiano", Flag: "🇮🇹"},
	"pt-BR": {Name: "Português (Brasil)", Flag: "🇧🇷"},
	"id":    {Name: "Bahasa Indonesia", Flag: "🇮🇩"},
	"ja":    {Name: "日本語", Flag: "🇯🇵"},
	"ko":    {Name: "한국어", Flag: "🇰🇷"},
	"zh-CN": {Name: "简体中文", Flag: "🇨🇳"},
	"zh-TW": {Name: "繁體中文", Flag: "🇹🇼"},
	"ar":    {Name: "العربية", Flag: "🇸🇦"},
	"tr":    {Name: "Türkçe", Flag: "🇹🇷"},
	"pl":    {Name: "Polski", Flag: "🇵🇱"},
	"uk":    {Name: "Українська", Flag: "🇺🇦"},
	"nl":    {Name: "Nederlands", Flag: "🇳🇱"},
	"sv":    {Name: "Svenska", Flag: "🇸🇪"},
	"cs":    {Name: "Čeština", Flag: "🇨🇿"},
	"ro":    {Name: "Română", Flag: "🇷🇴"},
	"hu":    {Name: "Magyar", Flag: "🇭🇺"},
	"el":    {Name: "Ελληνικά", Flag: "🇬🇷"},
	"da":    {Name: "Dansk", Flag: "🇩🇰"},
	"fi":    {Name: "Suomi", Flag: "🇫🇮"},
	"no":    {Name: "Norsk", Flag: "🇳🇴"},
	"th":    {Name: "ไทย", Flag: "🇹🇭"},
	"vi":    {Name: "Tiếng Việt", Flag: "🇻🇳"},
	"hi":    {Name: "हिन्दी", Flag: "🇮🇳"},
}

func canonicalize(lang string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "-")
}

// Resolve returns best-effort language metadata for language codes,
// supporting variants like pt_BR, pt-BR, and locale fallbacks.
func Resolve(lang string) Meta {
	if m, ok := Registry[lang]; ok {
		return m
	}
	normalized := canonicalize(lang)
	if m, ok := Registry[normalized]; ok {
		return m
	}
	if parts := strings.SplitN(normalized, "-", 2); len(parts) == 2 {
		if m, ok := Registry[parts[0]]; ok {
			return m
		}
	}
	return Meta{Name: lang, Flag: ""}
}

// ResolveCatalog returns display metadata for a catalog's declared
// Language header, or the zero Meta if it has none.
func ResolveCatalog(cat *gettext.Catalog) Meta {
	lang := cat.Metadata["Language"]
	if lang == "" {
		return Meta{}
	}
	return Resolve(lang)
}
