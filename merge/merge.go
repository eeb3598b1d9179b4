// Package merge implements catalog merging logic, equivalent to the
// msgmerge utility: updating a translated catalog against a freshly
// extracted reference template.
package merge

import (
	"github.com/minios-linux/gocat"
)

// Merge updates target (a translated PO catalog) with entries from
// reference (a freshly extracted POT template), per spec.md §4.6:
//
//   - Entries found in both (matched by msgctxt+msgid) keep their
//     translation but take the reference's occurrences and extracted
//     comments; their flags are the union of both sides' flags.
//   - Entries only in reference are added untranslated, marked fuzzy
//     when a similar msgid already exists in target.
//   - Entries only in target become obsolete.
func Merge(target, reference *gettext.Catalog) *gettext.Catalog {
	result := gettext.NewCatalog()
	result.Header = target.Header
	result.Encoding = target.Encoding
	result.WrapWidth = target.WrapWidth

	for _, kv := range target.OrderedMetadata() {
		result.SetMetadata(kv[0], kv[1])
	}
	if v, ok := reference.Metadata["POT-Creation-Date"]; ok && v != "" {
		result.SetMetadata("POT-Creation-Date", v)
	}

	existing := make(map[matchKey]*gettext.Entry)
	for _, e := range target.Entries {
		if !e.Obsolete {
			existing[entryMatchKey(e)] = e
		}
	}
	matched := make(map[matchKey]bool)

	for _, ref := range reference.Entries {
		if ref.MsgID == "" || ref.Obsolete {
			continue
		}
		key := entryMatchKey(ref)
		if old, ok := existing[key]; ok {
			result.Entries = append(result.Entries, mergeMatched(old, ref))
			matched[key] = true
			continue
		}
		result.Entries = append(result.Entries, mergeNew(target, ref))
	}

	for _, e := range target.Entries {
		if e.MsgID == "" || e.Obsolete || matched[entryMatchKey(e)] {
			continue
		}
		obsolete := *e
		obsolete.Obsolete = true
		obsolete.Occurrences = nil
		result.Entries = append(result.Entries, &obsolete)
	}

	return result
}

// matchKey is the (msgctxt, msgid) pair spec.md §4.6 matches entries
// on during merge — narrower than Entry.Key(), which also folds in
// msgid_plural and would wrongly treat a pluralization change as a
// different translation unit.
type matchKey struct {
	MsgCtxt string
	MsgID   string
}

func entryMatchKey(e *gettext.Entry) matchKey {
	return matchKey{MsgCtxt: e.MsgCtxt, MsgID: e.MsgID}
}

// mergeMatched combines an existing translation with the reference
// entry sharing its (msgctxt, msgid) match key: the translation and
// translator comment survive, occurrences and extracted comments come
// from the reference, and flags from both sides are combined.
func mergeMatched(old, ref *gettext.Entry) *gettext.Entry {
	merged := gettext.NewEntry()
	merged.MsgCtxt = ref.MsgCtxt
	merged.MsgID = ref.MsgID
	merged.MsgIDPlural = ref.MsgIDPlural
	merged.MsgStr = old.MsgStr
	merged.MsgStrPlural = old.MsgStrPlural
	merged.Occurrences = ref.Occurrences
	merged.TComment = ref.TComment
	merged.Comment = old.Comment
	merged.Flags = mergeFlags(old.Flags, ref.Flags)
	return merged
}

// mergeNew adds a reference-only entry untranslated, marking it fuzzy
// when target already has a similarly-spelled msgid — msgmerge's way
// of pointing the translator at a likely near-match.
func mergeNew(target *gettext.Catalog, ref *gettext.Entry) *gettext.Entry {
	e := gettext.NewEntry()
	e.MsgCtxt = ref.MsgCtxt
	e.MsgID = ref.MsgID
	e.MsgIDPlural = ref.MsgIDPlural
	e.Occurrences = ref.Occurrences
	e.TComment = ref.TComment
	e.Flags = append([]string(nil), ref.Flags...)
	if ref.MsgIDPlural != "" {
		e.MsgStrPlural = make(map[int]string)
	}
	if similarMsgID(target, ref.MsgID) != "" {
		e.SetFuzzy(true)
	}
	return e
}

// mergeFlags combines flags from the existing translation and the
// reference template, putting fuzzy first if either side carries it.
func mergeFlags(oldFlags, refFlags []string) []string {
	flagSet := make(map[string]bool)
	for _, f := range oldFlags {
		flagSet[f] = true
	}
	for _, f := range refFlags {
		flagSet[f] = true
	}

	var result []string
	if flagSet["fuzzy"] {
		result = append(result, "fuzzy")
	}
	for f := range flagSet {
		if f != "fuzzy" {
			result = append(result, f)
		}
	}
	return result
}

// similarMsgID returns the msgid of a non-obsolete target entry whose
// edit distance to needle is within a quarter of the longer string's
// rune length, or "" if none qualifies.
func similarMsgID(target *gettext.Catalog, needle string) string {
	best := ""
	bestDist := -1
	for _, e := range target.Entries {
		if e.Obsolete || e.MsgID == "" || e.MsgID == needle {
			continue
		}
		threshold := len([]rune(e.MsgID))
		if n := len([]rune(needle)); n > threshold {
			threshold = n
		}
		threshold /= 4
		if threshold == 0 {
			continue
		}
		d := levenshtein(e.MsgID, needle)
		if d <= threshold && (bestDist == -1 || d < bestDist) {
			bestDist = d
			best = e.MsgID
		}
	}
	return best
}

// levenshtein computes the classic edit distance between a and b.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			cur[j] = min
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
