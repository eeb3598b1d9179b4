package pofile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/minios-linux/gocat"
)

// WriteTo renders the catalog as PO text: the header comment block,
// the metadata-as-entry, non-obsolete entries in insertion order, then
// obsolete entries last.
func (f *POFile) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)

	writeComments(bw, f.Header, "#")
	header := gettext.NewEntry()
	header.MsgStr = f.HeaderMsgStr()
	if f.MetadataIsFuzzy {
		header.Flags = []string{"fuzzy"}
	}
	if err := writeEntry(bw, header, f.WrapWidth); err != nil {
		return err
	}

	var obsolete []*gettext.Entry
	for _, e := range f.Entries {
		if e.Obsolete {
			obsolete = append(obsolete, e)
			continue
		}
		fmt.Fprintln(bw)
		if err := writeEntry(bw, e, f.WrapWidth); err != nil {
			return err
		}
	}
	for _, e := range obsolete {
		fmt.Fprintln(bw)
		if err := writeEntry(bw, e, f.WrapWidth); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// String renders the catalog to PO text.
func (f *POFile) String() string {
	var buf bytes.Buffer
	_ = f.WriteTo(&buf)
	return buf.String()
}

func writeComments(w *bufio.Writer, lines []string, prefix string) {
	if len(lines) == 0 {
		fmt.Fprintf(w, "%s\n", prefix)
		return
	}
	for _, l := range lines {
		if l == "" {
			fmt.Fprintf(w, "%s\n", prefix)
		} else {
			fmt.Fprintf(w, "%s %s\n", prefix, l)
		}
	}
}

func writeEntry(w *bufio.Writer, e *gettext.Entry, wrapWidth int) error {
	prefix := ""
	if e.Obsolete {
		prefix = "#~ "
	}

	for _, c := range e.Comment {
		if c == "" {
			fmt.Fprintf(w, "%s#\n", prefix)
		} else {
			fmt.Fprintf(w, "%s# %s\n", prefix, c)
		}
	}
	for _, c := range e.TComment {
		fmt.Fprintf(w, "%s#. %s\n", prefix, c)
	}
	writeOccurrences(w, e.Occurrences, prefix, wrapWidth)
	if len(e.Flags) > 0 {
		fmt.Fprintf(w, "%s#, %s\n", prefix, strings.Join(e.Flags, ", "))
	}
	if e.PreviousMsgCtxt != "" {
		writeQuotedField(w, prefix+"#| msgctxt", e.PreviousMsgCtxt, wrapWidth)
	}
	if e.PreviousMsgID != "" {
		writeQuotedField(w, prefix+"#| msgid", e.PreviousMsgID, wrapWidth)
	}
	if e.PreviousMsgIDPlural != "" {
		writeQuotedField(w, prefix+"#| msgid_plural", e.PreviousMsgIDPlural, wrapWidth)
	}

	if e.MsgCtxt != "" {
		writeQuotedField(w, prefix+"msgctxt", e.MsgCtxt, wrapWidth)
	}
	writeQuotedField(w, prefix+"msgid", e.MsgID, wrapWidth)
	if e.MsgIDPlural != "" {
		writeQuotedField(w, prefix+"msgid_plural", e.MsgIDPlural, wrapWidth)
	}

	if e.MsgIDPlural != "" {
		indices := make([]int, 0, len(e.MsgStrPlural))
		for idx := range e.MsgStrPlural {
			indices = append(indices, idx)
		}
		sort.Ints(indices)
		for _, idx := range indices {
			writeQuotedField(w, fmt.Sprintf("%smsgstr[%d]", prefix, idx), e.MsgStrPlural[idx], wrapWidth)
		}
	} else {
		writeQuotedField(w, prefix+"msgstr", e.MsgStr, wrapWidth)
	}
	return nil
}

func writeOccurrences(w *bufio.Writer, occs []gettext.Occurrence, prefix string, wrapWidth int) {
	if len(occs) == 0 {
		return
	}
	tokens := make([]string, len(occs))
	for i, o := range occs {
		if o.Line != "" {
			tokens[i] = o.File + ":" + o.Line
		} else {
			tokens[i] = o.File
		}
	}
	joined := strings.Join(tokens, " ")
	if wrapWidth <= 0 || len(prefix)+len("#: ")+len(joined) <= wrapWidth {
		fmt.Fprintf(w, "%s#: %s\n", prefix, joined)
		return
	}

	var line strings.Builder
	flush := func() {
		if line.Len() > 0 {
			fmt.Fprintf(w, "%s#: %s\n", prefix, line.String())
			line.Reset()
		}
	}
	for _, tok := range tokens {
		if line.Len() > 0 && line.Len()+1+len(tok) > wrapWidth-len(prefix)-len("#: ") {
			flush()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(tok)
	}
	flush()
}

// writeQuotedField writes field "value" (or a wrapped multi-line form)
// per spec.md §4.3's wrapping rule.
func writeQuotedField(w *bufio.Writer, field, value string, wrapWidth int) {
	single := fmt.Sprintf(`%s "%s"`, field, gettext.Escape(value))
	if !needsWrap(value, single, wrapWidth) {
		fmt.Fprintln(w, single)
		return
	}
	fmt.Fprintf(w, "%s \"\"\n", field)
	for _, chunk := range wrapValue(value, wrapWidth) {
		fmt.Fprintf(w, "\"%s\"\n", gettext.Escape(chunk))
	}
}

// needsWrap reports whether value must render as field "" followed by
// continuation lines: either the single-line form is too long, or the
// value has an embedded newline that isn't just a single trailing one.
func needsWrap(value, singleLine string, wrapWidth int) bool {
	if wrapWidth > 0 && len(singleLine) > wrapWidth {
		return true
	}
	return strings.Contains(strings.TrimSuffix(value, "\n"), "\n")
}

// wrapValue splits value into physical chunks: an embedded "\n" always
// starts a new line (kept at the end of the line it terminates); each
// resulting segment is further word-wrapped to wrapWidth if needed.
func wrapValue(value string, wrapWidth int) []string {
	var out []string
	for _, seg := range splitKeepingNewline(value) {
		quotedLen := len(`"`) + len(seg) + len(`"`)
		if wrapWidth <= 0 || quotedLen <= wrapWidth {
			out = append(out, seg)
			continue
		}
		out = append(out, wordWrap(seg, wrapWidth)...)
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}

func splitKeepingNewline(value string) []string {
	parts := strings.Split(value, "\n")
	var segs []string
	for i, p := range parts {
		if i < len(parts)-1 {
			segs = append(segs, p+"\n")
		} else if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// wordWrap greedily packs whitespace-delimited tokens (trailing
// whitespace attached to the preceding token, so the chunks
// concatenate back to the input exactly) into lines whose quoted form
// does not exceed width. It breaks only at whitespace, so a single
// token longer than width gets a line of its own that exceeds it.
func wordWrap(segment string, width int) []string {
	trailingNL := strings.HasSuffix(segment, "\n")
	body := segment
	if trailingNL {
		body = strings.TrimSuffix(segment, "\n")
	}

	var lines []string
	var cur strings.Builder
	curLen := 2 // surrounding quotes

	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 2
		}
	}

	i := 0
	for i < len(body) {
		j := i
		for j < len(body) && body[j] != ' ' && body[j] != '\t' {
			j++
		}
		k := j
		for k < len(body) && (body[k] == ' ' || body[k] == '\t') {
			k++
		}
		tok := body[i:k]
		i = k

		tokLen := len(gettext.Escape(tok))
		if cur.Len() > 0 && curLen+tokLen > width {
			flush()
		}
		cur.WriteString(tok)
		curLen += tokLen
	}
	flush()
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	if trailingNL {
		lines[len(lines)-1] += "\n"
	}
	return lines
}
