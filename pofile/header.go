package pofile

import (
	"fmt"
	"strings"
	"time"
)

// NewWithHeader returns an empty catalog pre-populated with a standard
// gettext PO header: the conventional copyright/license comment block
// plus the usual metadata fields. This mirrors what xgettext writes
// into a freshly extracted .pot file.
func NewWithHeader(packageName, packageVersion, bugsEmail, copyrightHolder, language string) *POFile {
	f := NewFile()
	now := time.Now().UTC().Format("2006-01-02 15:04+0000")

	f.Header = []string{
		fmt.Sprintf("Translations for %s.", packageName),
		fmt.Sprintf("Copyright (C) %d %s", time.Now().Year(), copyrightHolder),
		fmt.Sprintf("This file is distributed under the same license as the %s package.", packageName),
	}

	f.SetMetadata("Project-Id-Version", strings.TrimSpace(packageName+" "+packageVersion))
	f.SetMetadata("Report-Msgid-Bugs-To", bugsEmail)
	f.SetMetadata("POT-Creation-Date", now)
	f.SetMetadata("PO-Revision-Date", now)
	f.SetMetadata("Last-Translator", "")
	f.SetMetadata("Language-Team", "")
	f.SetMetadata("Language", language)
	f.SetMetadata("MIME-Version", "1.0")
	f.SetMetadata("Content-Type", "text/plain; charset=UTF-8")
	f.SetMetadata("Content-Transfer-Encoding", "8bit")

	return f
}

// PluralFormsForLang returns the standard gettext Plural-Forms header
// value for a language code, normalizing to the base language first
// (so "pt_BR" and "pt-BR" both resolve via the "pt" family below).
func PluralFormsForLang(lang string) string {
	base := lang
	if idx := strings.IndexAny(lang, "_-"); idx > 0 {
		base = lang[:idx]
	}

	switch base {
	case "ja", "ko", "zh", "vi", "th", "id", "ms":
		return "nplurals=1; plural=0;"
	case "fr", "pt":
		return "nplurals=2; plural=(n > 1);"
	case "en", "de", "nl", "sv", "da", "no", "nb", "nn", "fi", "es", "it", "el", "he", "hu", "tr", "bg", "hi", "ur":
		return "nplurals=2; plural=(n != 1);"
	case "ru", "uk", "be", "hr", "sr", "bs":
		return "nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);"
	case "pl":
		return "nplurals=3; plural=(n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);"
	case "cs", "sk":
		return "nplurals=3; plural=(n==1 ? 0 : n>=2 && n<=4 ? 1 : 2);"
	case "ro":
		return "nplurals=3; plural=(n==1 ? 0 : (n==0 || (n%100 > 0 && n%100 < 20)) ? 1 : 2);"
	case "lt":
		return "nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && (n%100<10 || n%100>=20) ? 1 : 2);"
	case "lv":
		return "nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n != 0 ? 1 : 2);"
	case "ar":
		return "nplurals=6; plural=(n==0 ? 0 : n==1 ? 1 : n==2 ? 2 : n%100>=3 && n%100<=10 ? 3 : n%100>=11 ? 4 : 5);"
	default:
		return "nplurals=2; plural=(n != 1);"
	}
}

// LangNameNative returns the native name of a language, or the input
// unchanged if it isn't one of the languages gettext commonly ships
// translations for.
func LangNameNative(lang string) string {
	names := map[string]string{
		"ar": "العربية", "bg": "Български", "cs": "Čeština", "da": "Dansk",
		"de": "Deutsch", "el": "Ελληνικά", "en": "English", "es": "Español",
		"fi": "Suomi", "fr": "Français", "he": "עברית", "hi": "हिन्दी",
		"hr": "Hrvatski", "hu": "Magyar", "id": "Bahasa Indonesia", "it": "Italiano",
		"ja": "日本語", "ko": "한국어", "lt": "Lietuvių", "lv": "Latviešu",
		"ms": "Bahasa Melayu", "nl": "Nederlands", "no": "Norsk", "nb": "Norsk bokmål",
		"nn": "Norsk nynorsk", "pl": "Polski", "pt": "Português", "pt_BR": "Português (Brasil)",
		"ro": "Română", "ru": "Русский", "sk": "Slovenčina", "sr": "Српски",
		"sv": "Svenska", "th": "ไทย", "tr": "Türkçe", "uk": "Українська",
		"vi": "Tiếng Việt", "zh": "中文",
	}
	if name, ok := names[lang]; ok {
		return name
	}
	return lang
}
