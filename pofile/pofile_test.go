package pofile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveWithoutPathFails(t *testing.T) {
	f := NewFile()
	if err := f.Save(); err == nil {
		t.Fatal("expected error saving a file with no known path")
	}
}

func TestSaveAsThenSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.po")

	f := NewFile()
	f.SetMetadata("Language", "de")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs error: %v", err)
	}

	f.SetMetadata("Language", "fr")
	if err := f.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !contains(string(data), "Language: fr") {
		t.Fatalf("saved file missing updated metadata:\n%s", data)
	}
}

func TestReadFileRemembersPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.po")
	if err := os.WriteFile(path, []byte("msgid \"a\"\nmsgstr \"1\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	f, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if f.FPath != path {
		t.Fatalf("FPath = %q, want %q", f.FPath, path)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestNewWithHeaderPopulatesMetadata(t *testing.T) {
	f := NewWithHeader("demo", "1.0", "bugs@example.com", "Example Corp", "ru")
	if f.Metadata["Project-Id-Version"] != "demo 1.0" {
		t.Fatalf("Project-Id-Version = %q", f.Metadata["Project-Id-Version"])
	}
	if f.Metadata["Report-Msgid-Bugs-To"] != "bugs@example.com" {
		t.Fatalf("Report-Msgid-Bugs-To = %q", f.Metadata["Report-Msgid-Bugs-To"])
	}
	if f.Metadata["Language"] != "ru" {
		t.Fatalf("Language = %q", f.Metadata["Language"])
	}
	if len(f.Header) != 3 {
		t.Fatalf("Header = %v, want 3 lines", f.Header)
	}
}

func TestPluralFormsForLangFamilies(t *testing.T) {
	cases := []struct {
		lang string
		want string
	}{
		{"ja", "nplurals=1; plural=0;"},
		{"pt_BR", "nplurals=2; plural=(n > 1);"},
		{"pt-BR", "nplurals=2; plural=(n > 1);"},
		{"en", "nplurals=2; plural=(n != 1);"},
		{"ru", "nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);"},
		{"ar", "nplurals=6; plural=(n==0 ? 0 : n==1 ? 1 : n==2 ? 2 : n%100>=3 && n%100<=10 ? 3 : n%100>=11 ? 4 : 5);"},
		{"xx", "nplurals=2; plural=(n != 1);"},
	}
	for _, c := range cases {
		if got := PluralFormsForLang(c.lang); got != c.want {
			t.Errorf("PluralFormsForLang(%q) = %q, want %q", c.lang, got, c.want)
		}
	}
}

func TestLangNameNativeFallsBackToInput(t *testing.T) {
	if got := LangNameNative("ru"); got != "Русский" {
		t.Fatalf("LangNameNative(ru) = %q", got)
	}
	if got := LangNameNative("xx-unknown"); got != "xx-unknown" {
		t.Fatalf("LangNameNative(xx-unknown) = %q, want unchanged", got)
	}
}
