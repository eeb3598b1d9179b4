package pofile

import (
	"strings"
	"testing"

	"github.com/minios-linux/gocat"
)

func TestWriteHeaderFuzzyFlag(t *testing.T) {
	f := NewFile()
	f.MetadataIsFuzzy = true
	f.SetMetadata("Language", "ru")

	out := f.String()
	if !strings.Contains(out, "#, fuzzy\n") {
		t.Fatalf("output missing fuzzy flag on header:\n%s", out)
	}
	if !strings.Contains(out, "\"Language: ru\\n\"") {
		t.Fatalf("output missing Language metadata line:\n%s", out)
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	input := `msgid ""
msgstr ""
"Project-Id-Version: demo\n"
"Language: fr\n"

#. a note
#: main.go:10 main.go:20
#, c-format
msgid "hello"
msgstr "bonjour"

msgid "count"
msgid_plural "counts"
msgstr[0] "un"
msgstr[1] "plusieurs"
`
	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	again, err := Parse(f.String())
	if err != nil {
		t.Fatalf("re-parse error: %v\n%s", err, f.String())
	}
	if len(again.Entries) != len(f.Entries) {
		t.Fatalf("entries len mismatch: %d vs %d", len(again.Entries), len(f.Entries))
	}
	for i := range f.Entries {
		a, b := f.Entries[i], again.Entries[i]
		if a.MsgID != b.MsgID || a.MsgStr != b.MsgStr {
			t.Fatalf("entry %d mismatch: %#v vs %#v", i, a, b)
		}
	}
	if again.Metadata["Project-Id-Version"] != "demo" {
		t.Fatalf("metadata lost on round trip: %#v", again.Metadata)
	}
}

func TestWriteWrapsLongFieldAtWidth(t *testing.T) {
	f := NewFile()
	f.WrapWidth = 20
	e := gettext.NewEntry()
	e.MsgID = "short"
	e.MsgStr = "this is a much longer translated string that must wrap"
	if err := f.Append(e); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	out := f.String()
	if !strings.Contains(out, "msgstr \"\"\n") {
		t.Fatalf("expected wrapped msgstr to start with empty line:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > f.WrapWidth && strings.HasPrefix(line, "\"") {
			t.Fatalf("line exceeds wrap width %d: %q", f.WrapWidth, line)
		}
	}

	again, err := Parse(out)
	if err != nil {
		t.Fatalf("re-parse error: %v\n%s", err, out)
	}
	if again.Entries[0].MsgStr != e.MsgStr {
		t.Fatalf("MsgStr = %q, want %q", again.Entries[0].MsgStr, e.MsgStr)
	}
}

func TestWriteEmbeddedNewlineForcesWrap(t *testing.T) {
	f := NewFile()
	e := gettext.NewEntry()
	e.MsgID = "multi"
	e.MsgStr = "line one\nline two"
	if err := f.Append(e); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	out := f.String()
	if !strings.Contains(out, "msgstr \"\"\n\"line one\\n\"\n\"line two\"\n") {
		t.Fatalf("expected embedded-newline wrap form, got:\n%s", out)
	}
}

func TestWriteOccurrencesWrapAcrossLines(t *testing.T) {
	f := NewFile()
	f.WrapWidth = 30
	e := gettext.NewEntry()
	e.MsgID = "x"
	e.MsgStr = "y"
	for i := 0; i < 6; i++ {
		e.Occurrences = append(e.Occurrences, gettext.Occurrence{File: "some/long/path/file.go", Line: "1"})
	}
	if err := f.Append(e); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	out := f.String()
	count := strings.Count(out, "#: ")
	if count < 2 {
		t.Fatalf("expected occurrences to wrap across multiple #: lines, got %d:\n%s", count, out)
	}
}

func TestWriteObsoleteEntriesRenderLast(t *testing.T) {
	f := NewFile()
	live := gettext.NewEntry()
	live.MsgID = "live"
	live.MsgStr = "alive"
	obs := gettext.NewEntry()
	obs.MsgID = "dead"
	obs.MsgStr = "gone"
	obs.Obsolete = true

	if err := f.Append(obs); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := f.Append(live); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	out := f.String()
	liveIdx := strings.Index(out, "msgid \"live\"")
	deadIdx := strings.Index(out, "#~ msgid \"dead\"")
	if liveIdx < 0 || deadIdx < 0 || deadIdx < liveIdx {
		t.Fatalf("expected obsolete entry to render after live entry:\n%s", out)
	}
}
