package gettext

import "strconv"

// Occurrence is one source-location reference (a "#:" comment token):
// the file the string was extracted from and the line number, kept as
// text so an empty line ("foo.py" with no line number) round-trips.
type Occurrence struct {
	File string
	Line string
}

// Entry is one translation unit: a msgid (and optional msgid_plural),
// its translation(s), and the annotations gettext hangs off it.
//
// An entry is either singular (MsgStr set, MsgIDPlural empty) or
// plural (MsgIDPlural and MsgStrPlural set, MsgStr empty); never both.
type Entry struct {
	MsgCtxt      string
	MsgID        string
	MsgIDPlural  string
	MsgStr       string
	MsgStrPlural map[int]string

	Obsolete bool
	Flags    []string

	Occurrences []Occurrence
	Comment     []string // translator comment, "# " lines
	TComment    []string // extracted comment, "#." lines

	PreviousMsgCtxt     string
	PreviousMsgID       string
	PreviousMsgIDPlural string

	// LineNum is the 1-based source line where the entry began.
	// Parser-assigned; not persisted on serialization.
	LineNum int
}

// NewEntry returns an Entry ready to receive plural translations.
func NewEntry() *Entry {
	return &Entry{MsgStrPlural: make(map[int]string)}
}

// EntryKey is an entry's identity: two entries are the same translation
// unit iff their (MsgCtxt, MsgID, MsgIDPlural) triples match.
type EntryKey struct {
	MsgCtxt     string
	MsgID       string
	MsgIDPlural string
}

// Key returns the entry's identity key.
func (e *Entry) Key() EntryKey {
	return EntryKey{MsgCtxt: e.MsgCtxt, MsgID: e.MsgID, MsgIDPlural: e.MsgIDPlural}
}

// IsPlural reports whether the entry carries plural forms.
func (e *Entry) IsPlural() bool {
	return e.MsgIDPlural != ""
}

// IsHeader reports whether this is the conventional empty-msgid header
// entry.
func (e *Entry) IsHeader() bool {
	return e.MsgID == "" && e.MsgCtxt == ""
}

// IsFuzzy reports whether the entry carries the "fuzzy" flag.
func (e *Entry) IsFuzzy() bool {
	return e.HasFlag("fuzzy")
}

// SetFuzzy adds or removes the "fuzzy" flag.
func (e *Entry) SetFuzzy(fuzzy bool) {
	if fuzzy {
		if !e.IsFuzzy() {
			e.Flags = append(e.Flags, "fuzzy")
		}
		return
	}
	filtered := make([]string, 0, len(e.Flags))
	for _, f := range e.Flags {
		if f != "fuzzy" {
			filtered = append(filtered, f)
		}
	}
	e.Flags = filtered
}

// HasFlag reports whether a specific flag is present.
func (e *Entry) HasFlag(flag string) bool {
	for _, f := range e.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// IsTranslated reports whether the entry is non-obsolete, non-fuzzy,
// and has every msgstr slot filled (every plural slot of a plural
// entry, which needs at least one, or the single msgstr of a singular
// one). The header entry is never
// "translated".
func (e *Entry) IsTranslated() bool {
	if e.MsgID == "" || e.Obsolete || e.IsFuzzy() {
		return false
	}
	if e.IsPlural() {
		if len(e.MsgStrPlural) == 0 {
			return false
		}
		for _, v := range e.MsgStrPlural {
			if v == "" {
				return false
			}
		}
		return true
	}
	return e.MsgStr != ""
}

// firstOccurrence returns the entry's first occurrence and whether one
// exists.
func (e *Entry) firstOccurrence() (Occurrence, bool) {
	if len(e.Occurrences) == 0 {
		return Occurrence{}, false
	}
	return e.Occurrences[0], true
}

// Less implements the catalog sort order from spec.md §3: compare by
// the first occurrence's (file, line-as-integer) pair, then msgid.
// Entries without occurrences sort before ones with occurrences;
// obsolete entries always sort last regardless of occurrences.
func (e *Entry) Less(other *Entry) bool {
	if e.Obsolete != other.Obsolete {
		return !e.Obsolete
	}
	if e.Obsolete && other.Obsolete {
		return false
	}

	eo, eHas := e.firstOccurrence()
	oo, oHas := other.firstOccurrence()
	if eHas != oHas {
		return !eHas
	}
	if !eHas {
		return e.MsgID < other.MsgID
	}
	if eo.File != oo.File {
		return eo.File < oo.File
	}
	eLine, eErr := strconv.Atoi(eo.Line)
	oLine, oErr := strconv.Atoi(oo.Line)
	if eErr == nil && oErr == nil && eLine != oLine {
		return eLine < oLine
	}
	if eo.Line != oo.Line {
		return eo.Line < oo.Line
	}
	return e.MsgID < other.MsgID
}
