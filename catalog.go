// Package gettext holds the entry/catalog model shared by the pofile
// and mofile packages: an ordered collection of translation units plus
// the header metadata gettext conventionally stores in the
// empty-msgid entry. pofile and mofile each embed a *Catalog and add
// their own wire-format-specific parse/serialize code.
package gettext

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Field names the entry attribute a Find/lookup operates over.
// gettext's Python ancestor used a dynamic "by" attribute name; here
// it is a small closed enum dispatched in FieldValue instead, so Find
// never needs runtime reflection.
type Field int

const (
	FieldMsgID Field = iota
	FieldMsgStr
	FieldMsgCtxt
	FieldTComment
	FieldOccurrenceFile
)

// FieldValue returns the entry's value for the given field. For
// FieldOccurrenceFile it returns the first occurrence's file, or "" if
// the entry has none.
func (e *Entry) FieldValue(f Field) string {
	switch f {
	case FieldMsgID:
		return e.MsgID
	case FieldMsgStr:
		return e.MsgStr
	case FieldMsgCtxt:
		return e.MsgCtxt
	case FieldTComment:
		return strings.Join(e.TComment, "\n")
	case FieldOccurrenceFile:
		if occ, ok := e.firstOccurrence(); ok {
			return occ.File
		}
		return ""
	default:
		return ""
	}
}

// Catalog is an ordered collection of entries plus catalog-level
// metadata. POFile and MOFile both embed one.
type Catalog struct {
	// Entries holds every non-header entry in insertion order.
	Entries []*Entry

	// Header is the free-form comment block rendered above the
	// metadata entry.
	Header []string

	// Metadata maps header key to value; MetadataOrder preserves the
	// order keys were first seen (SetMetadata of a new key appends to
	// it; OrderedMetadata computes its own canonical order from this
	// for rendering, so MetadataOrder matters only for callers
	// iterating Metadata themselves).
	Metadata      map[string]string
	MetadataOrder []string
	// MetadataIsFuzzy marks the header entry itself fuzzy.
	MetadataIsFuzzy bool

	// Encoding is the text encoding declared by Content-Type's
	// charset, case-preserved; defaults to "utf-8".
	Encoding string
	// WrapWidth is the preferred PO serialization line width; 0 means
	// never wrap.
	WrapWidth int
	// FPath is the path the catalog was last read from (ReadFile) or
	// saved to (SaveAs), used by a bare Save().
	FPath string
	// CheckForDuplicates makes Append/Insert reject an entry whose
	// identity key collides with an existing non-obsolete entry.
	CheckForDuplicates bool
}

// NewCatalog returns an empty catalog with gettext's usual defaults.
func NewCatalog() *Catalog {
	return &Catalog{
		Metadata:  make(map[string]string),
		Encoding:  "utf-8",
		WrapWidth: 78,
	}
}

// SetMetadata sets a single header field, appending it to
// MetadataOrder the first time it is seen.
func (c *Catalog) SetMetadata(key, value string) {
	if c.Metadata == nil {
		c.Metadata = make(map[string]string)
	}
	if _, ok := c.Metadata[key]; !ok {
		c.MetadataOrder = append(c.MetadataOrder, key)
	}
	c.Metadata[key] = value
}

// ParseHeaderMsgStr splits a header entry's msgstr on "\n" and each
// non-empty line at its first ":" into a (key, value) pair, per
// spec.md §4.2's header-promotion rule. It replaces the catalog's
// existing metadata.
func (c *Catalog) ParseHeaderMsgStr(msgstr string) {
	c.Metadata = make(map[string]string)
	c.MetadataOrder = nil
	for _, line := range strings.Split(msgstr, "\n") {
		if line == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := line[:idx]
		value := strings.TrimLeft(line[idx+1:], " \t")
		c.SetMetadata(key, value)
	}
}

// HeaderMsgStr renders the catalog's metadata back into the
// newline-separated "Key: value" form gettext stores in the header
// entry's msgstr, using OrderedMetadata's canonical ordering.
func (c *Catalog) HeaderMsgStr() string {
	var b strings.Builder
	for _, kv := range c.OrderedMetadata() {
		b.WriteString(kv[0])
		b.WriteString(": ")
		b.WriteString(kv[1])
		b.WriteString("\n")
	}
	return b.String()
}

// fixedMetadataOrder is the canonical prefix OrderedMetadata always
// emits first, when present.
var fixedMetadataOrder = []string{
	"Project-Id-Version",
	"Report-Msgid-Bugs-To",
	"POT-Creation-Date",
	"PO-Revision-Date",
	"Last-Translator",
	"Language-Team",
	"MIME-Version",
	"Content-Type",
	"Content-Transfer-Encoding",
}

// OrderedMetadata returns metadata as (key, value) pairs: the fixed
// header keys first (in the order above, each included only if
// present), then the remaining keys in natural sort order (so
// "X-Poedit-SearchPath-2" precedes "X-Poedit-SearchPath-10").
func (c *Catalog) OrderedMetadata() [][2]string {
	out := make([][2]string, 0, len(c.Metadata))
	seen := make(map[string]bool, len(fixedMetadataOrder))

	for _, key := range fixedMetadataOrder {
		if v, ok := c.Metadata[key]; ok {
			out = append(out, [2]string{key, v})
			seen[key] = true
		}
	}

	rest := make([]string, 0, len(c.Metadata))
	for key := range c.Metadata {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return naturalLess(rest[i], rest[j]) })
	for _, key := range rest {
		out = append(out, [2]string{key, c.Metadata[key]})
	}
	return out
}

// naturalLess compares strings so that a trailing run of digits
// compares numerically rather than lexically ("-2" before "-10").
func naturalLess(a, b string) bool {
	ai, bi := splitTrailingDigits(a), splitTrailingDigits(b)
	if ai.prefix != bi.prefix {
		return ai.prefix < bi.prefix
	}
	if ai.hasNum && bi.hasNum {
		if ai.num != bi.num {
			return ai.num < bi.num
		}
	} else if ai.hasNum != bi.hasNum {
		// A bare prefix with no numeric suffix sorts before one that
		// has it ("X-Foo" before "X-Foo-2").
		return !ai.hasNum
	}
	return a < b
}

type trailingDigits struct {
	prefix string
	num    int
	hasNum bool
}

func splitTrailingDigits(s string) trailingDigits {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) || i == 0 {
		return trailingDigits{prefix: s}
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return trailingDigits{prefix: s}
	}
	return trailingDigits{prefix: s[:i], num: n, hasNum: true}
}

// Find returns the first entry (obsolete entries excluded unless
// includeObsolete is set) whose selected field equals needle and,
// when msgctxt is non-nil, whose MsgCtxt also matches. It returns nil
// if nothing matches.
func (c *Catalog) Find(needle string, by Field, includeObsolete bool, msgctxt *string) *Entry {
	for _, e := range c.Entries {
		if e.Obsolete && !includeObsolete {
			continue
		}
		if e.FieldValue(by) != needle {
			continue
		}
		if msgctxt != nil && e.MsgCtxt != *msgctxt {
			continue
		}
		return e
	}
	return nil
}

// duplicateOf reports the existing non-obsolete entry sharing key, if
// any.
func (c *Catalog) duplicateOf(key EntryKey) *Entry {
	for _, e := range c.Entries {
		if e.Obsolete {
			continue
		}
		if e.Key() == key {
			return e
		}
	}
	return nil
}

// Append adds an entry to the end of the catalog. If
// CheckForDuplicates is set and an identity collision is found
// against an existing non-obsolete entry, it returns an error naming
// the duplicated msgid instead of appending.
func (c *Catalog) Append(e *Entry) error {
	return c.Insert(len(c.Entries), e)
}

// Insert adds an entry at position i, subject to the same duplicate
// check as Append.
func (c *Catalog) Insert(i int, e *Entry) error {
	if c.CheckForDuplicates {
		if dup := c.duplicateOf(e.Key()); dup != nil {
			return fmt.Errorf("entry %q already exists", e.MsgID)
		}
	}
	if i < 0 || i > len(c.Entries) {
		i = len(c.Entries)
	}
	c.Entries = append(c.Entries, nil)
	copy(c.Entries[i+1:], c.Entries[i:])
	c.Entries[i] = e
	return nil
}

// Sort stably reorders Entries per Entry.Less (occurrence order, then
// msgid; obsolete entries last).
func (c *Catalog) Sort() {
	sort.SliceStable(c.Entries, func(i, j int) bool {
		return c.Entries[i].Less(c.Entries[j])
	})
}

// TranslatedEntries returns non-obsolete, non-header, fully-translated
// entries.
func (c *Catalog) TranslatedEntries() []*Entry {
	var out []*Entry
	for _, e := range c.Entries {
		if e.MsgID == "" || e.Obsolete {
			continue
		}
		if e.IsTranslated() {
			out = append(out, e)
		}
	}
	return out
}

// UntranslatedEntries returns non-obsolete, non-fuzzy, non-header
// entries that are not fully translated.
func (c *Catalog) UntranslatedEntries() []*Entry {
	var out []*Entry
	for _, e := range c.Entries {
		if e.MsgID == "" || e.Obsolete || e.IsFuzzy() {
			continue
		}
		if !e.IsTranslated() {
			out = append(out, e)
		}
	}
	return out
}

// FuzzyEntries returns non-obsolete entries marked fuzzy.
func (c *Catalog) FuzzyEntries() []*Entry {
	var out []*Entry
	for _, e := range c.Entries {
		if e.MsgID == "" || e.Obsolete {
			continue
		}
		if e.IsFuzzy() {
			out = append(out, e)
		}
	}
	return out
}

// ObsoleteEntries returns entries marked obsolete.
func (c *Catalog) ObsoleteEntries() []*Entry {
	var out []*Entry
	for _, e := range c.Entries {
		if e.Obsolete {
			out = append(out, e)
		}
	}
	return out
}

// PercentTranslated returns the integer percentage of non-obsolete,
// non-header entries that are fully translated. An empty catalog (no
// entries beyond the header) is considered 100% translated.
func (c *Catalog) PercentTranslated() int {
	total := 0
	translated := 0
	for _, e := range c.Entries {
		if e.MsgID == "" || e.Obsolete {
			continue
		}
		total++
		if e.IsTranslated() {
			translated++
		}
	}
	if total == 0 {
		return 100
	}
	return translated * 100 / total
}
