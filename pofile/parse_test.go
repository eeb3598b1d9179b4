package pofile

import (
	"strings"
	"testing"
)

func TestParseSmallInlinePO(t *testing.T) {
	input := "msgid \"\"\nmsgstr \"\"\n\"Project-Id-Version: django\\n\"\n\nmsgid \"foo\"\nmsgstr \"bar\"\n"

	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := f.Metadata["Project-Id-Version"]; got != "django" {
		t.Fatalf("Project-Id-Version = %q, want django", got)
	}
	if f.Encoding != "utf-8" {
		t.Fatalf("Encoding = %q, want utf-8", f.Encoding)
	}
	if len(f.Entries) != 1 {
		t.Fatalf("entries len = %d, want 1", len(f.Entries))
	}
	e := f.Entries[0]
	if e.MsgID != "foo" || e.MsgStr != "bar" {
		t.Fatalf("entry = %#v, want foo->bar", e)
	}
	if !e.IsTranslated() {
		t.Fatal("foo->bar entry should be translated")
	}
}

func TestParseUnescapedQuoteError(t *testing.T) {
	input := "msgid \"x\"\nmsgstr \"x \"y\"\n"
	_, err := Parse(input)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	want := `unescaped double quote found: (line 2)`
	if err.Error() != want {
		t.Fatalf("err = %q, want %q", err.Error(), want)
	}
}

func TestParseWindowsPathOccurrence(t *testing.T) {
	input := "#: C:\\foo\\bar.py:12\nmsgid \"hi\"\nmsgstr \"\"\n"
	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(f.Entries) != 1 || len(f.Entries[0].Occurrences) != 1 {
		t.Fatalf("entries = %#v", f.Entries)
	}
	occ := f.Entries[0].Occurrences[0]
	if occ.File != `C:\foo\bar.py` || occ.Line != "12" {
		t.Fatalf("occurrence = %#v, want C:\\foo\\bar.py:12", occ)
	}
}

func TestParseBarePathOccurrenceHasNoLine(t *testing.T) {
	input := "#: foo.py\nmsgid \"hi\"\nmsgstr \"\"\n"
	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	occ := f.Entries[0].Occurrences[0]
	if occ.File != "foo.py" || occ.Line != "" {
		t.Fatalf("occurrence = %#v, want foo.py with empty line", occ)
	}
}

func TestParseObsoleteWithDiscardedPreviousAnnotation(t *testing.T) {
	input := "#~| msgid \"old\"\n#~ msgid \"foo\"\n#~ msgstr \"bar\"\n"
	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(f.Entries) != 1 {
		t.Fatalf("entries = %#v, want 1 obsolete entry", f.Entries)
	}
	e := f.Entries[0]
	if !e.Obsolete || e.MsgID != "foo" || e.MsgStr != "bar" {
		t.Fatalf("entry = %#v", e)
	}
	if e.PreviousMsgID != "" {
		t.Fatalf("PreviousMsgID = %q, #~| lines should be discarded", e.PreviousMsgID)
	}
}

func TestParseFuzzyHeaderSetsMetadataIsFuzzy(t *testing.T) {
	input := "#, fuzzy\nmsgid \"\"\nmsgstr \"\"\n\"Language: ru\\n\"\n"
	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !f.MetadataIsFuzzy {
		t.Fatal("MetadataIsFuzzy should be true")
	}
	if f.Metadata["Language"] != "ru" {
		t.Fatalf("Language = %q, want ru", f.Metadata["Language"])
	}
}

func TestParsePluralAndPreviousMsgID(t *testing.T) {
	input := `msgid ""
msgstr ""
"Language: ru\n"

#, fuzzy
#| msgid "old count"
msgid "count"
msgid_plural "counts"
msgstr[0] "odin"
msgstr[1] "mnogo"
`
	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(f.Entries) != 1 {
		t.Fatalf("entries len = %d, want 1", len(f.Entries))
	}
	e := f.Entries[0]
	if e.PreviousMsgID != "old count" {
		t.Fatalf("PreviousMsgID = %q, want %q", e.PreviousMsgID, "old count")
	}
	if e.MsgStrPlural[0] != "odin" || e.MsgStrPlural[1] != "mnogo" {
		t.Fatalf("MsgStrPlural = %v", e.MsgStrPlural)
	}
	if !e.IsFuzzy() {
		t.Fatal("entry should be fuzzy")
	}
}

func TestParseCommentVariants(t *testing.T) {
	input := `# translator note
#. extracted note
#: app.go:12 app.go:34
#, fuzzy, c-format
msgid "hello"
msgstr "privet"
`
	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	e := f.Entries[0]
	if len(e.Comment) != 1 || e.Comment[0] != "translator note" {
		t.Fatalf("Comment = %v", e.Comment)
	}
	if len(e.TComment) != 1 || e.TComment[0] != "extracted note" {
		t.Fatalf("TComment = %v", e.TComment)
	}
	if len(e.Occurrences) != 2 {
		t.Fatalf("Occurrences = %v", e.Occurrences)
	}
	if !e.HasFlag("fuzzy") || !e.HasFlag("c-format") {
		t.Fatalf("Flags = %v", e.Flags)
	}
}

func TestParseTolerantRecoveryWithoutBlankLine(t *testing.T) {
	input := "msgid \"a\"\nmsgstr \"1\"\nmsgid \"b\"\nmsgstr \"2\"\n"
	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(f.Entries) != 2 {
		t.Fatalf("entries = %#v, want 2 (tolerant recovery across missing blank line)", f.Entries)
	}
	if f.Entries[0].MsgID != "a" || f.Entries[1].MsgID != "b" {
		t.Fatalf("entries = %#v", f.Entries)
	}
}

func TestParseEmptyInputYieldsHeaderOnlyCatalog(t *testing.T) {
	f, err := Parse("")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(f.Entries) != 0 {
		t.Fatalf("entries = %#v, want none", f.Entries)
	}
	want := "#\nmsgid \"\"\nmsgstr \"\"\n"
	if got := f.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestParseNormalizesCRLF(t *testing.T) {
	input := "msgid \"a\"\r\nmsgstr \"1\"\r\n"
	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(f.Entries) != 1 || f.Entries[0].MsgStr != "1" {
		t.Fatalf("entries = %#v", f.Entries)
	}
}

func TestReadFromReader(t *testing.T) {
	f, err := Read(strings.NewReader("msgid \"a\"\nmsgstr \"1\"\n"))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(f.Entries) != 1 {
		t.Fatalf("entries = %#v", f.Entries)
	}
}
