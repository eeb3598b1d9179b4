package pofile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/minios-linux/gocat"
	"github.com/minios-linux/gocat/encoding"
)

// fieldKind names which string field a continuation line ("...") would
// extend — the line-oriented state machine's notion of "current
// state" from spec.md §4.2 collapsed into one enum instead of a state
// per comment/string variant, since Go has no dynamic attribute
// dispatch to fall back on.
type fieldKind int

const (
	fNone fieldKind = iota
	fMsgCtxt
	fMsgID
	fMsgIDPlural
	fMsgStr
	fMsgStrPlural
	fPrevMsgCtxt
	fPrevMsgID
	fPrevMsgIDPlural
)

type parser struct {
	cat       *gettext.Catalog
	lineNum   int
	current   *gettext.Entry
	field     fieldKind
	pluralIdx int
	seenMsgID bool
}

func newParser() *parser {
	return &parser{cat: gettext.NewCatalog()}
}

func (p *parser) ensureCurrent() {
	if p.current == nil {
		p.current = gettext.NewEntry()
		p.current.LineNum = p.lineNum
		p.seenMsgID = false
		p.field = fNone
	}
}

// flush closes out the current entry: the empty-msgid entry is
// promoted to catalog header/metadata, everything else is appended.
func (p *parser) flush() {
	if p.current == nil {
		return
	}
	e := p.current
	p.current = nil
	p.field = fNone
	p.seenMsgID = false

	if e.MsgID == "" && e.MsgCtxt == "" && !e.Obsolete {
		p.cat.Header = e.Comment
		p.cat.ParseHeaderMsgStr(e.MsgStr)
		p.cat.MetadataIsFuzzy = e.IsFuzzy()
		return
	}
	p.cat.Entries = append(p.cat.Entries, e)
}

func (p *parser) errf(format string, args ...any) error {
	return &gettext.POParseError{Message: fmt.Sprintf(format, args...), Line: p.lineNum}
}

// parseQuoted decodes one "..." body, validating quoting per spec.md
// §4.2: the body must start and end with an unescaped double quote; an
// unescaped quote anywhere else is a structural error.
func parseQuoted(s string, lineNum int) (string, error) {
	if len(s) < 1 || s[0] != '"' {
		return "", &gettext.POParseError{Message: "unescaped double quote found:", Line: lineNum}
	}
	body := s[1:]
	var out strings.Builder
	closed := false
	i := 0
	for i < len(body) {
		c := body[i]
		if c == '"' {
			if i != len(body)-1 {
				return "", &gettext.POParseError{Message: "unescaped double quote found:", Line: lineNum}
			}
			closed = true
			break
		}
		if c == '\\' && i+1 < len(body) {
			switch body[i+1] {
			case '\\':
				out.WriteByte('\\')
			case '"':
				out.WriteByte('"')
			case 'n':
				out.WriteByte('\n')
			case 't':
				out.WriteByte('\t')
			case 'r':
				out.WriteByte('\r')
			default:
				out.WriteByte(c)
				i++
				continue
			}
			i += 2
			continue
		}
		out.WriteByte(c)
		i++
	}
	if !closed {
		return "", &gettext.POParseError{Message: "unescaped double quote found:", Line: lineNum}
	}
	return out.String(), nil
}

// parseOccurrence splits a "#:" token into (file, line) per the rule
// in spec.md §4.2 and §9: the line number is the last colon-separated
// token that parses as a positive integer, so "C:\foo\bar.py:12" keeps
// its drive-letter colon in the file half.
func parseOccurrence(tok string) gettext.Occurrence {
	idx := strings.LastIndex(tok, ":")
	for idx >= 0 {
		candidate := tok[idx+1:]
		if n, err := strconv.Atoi(candidate); err == nil && n > 0 {
			return gettext.Occurrence{File: tok[:idx], Line: candidate}
		}
		idx = strings.LastIndex(tok[:idx], ":")
	}
	return gettext.Occurrence{File: tok}
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	// A trailing newline produces one spurious empty "line" at the end
	// of Split; dropping it matters because an empty line is also our
	// entry terminator and we don't want a phantom flush.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Parse reads a PO/POT file from decoded text.
func Parse(text string) (*POFile, error) {
	p := newParser()
	lines := splitLines(text)

	for _, raw := range lines {
		p.lineNum++
		line := strings.TrimRight(raw, " \t")

		if strings.TrimSpace(line) == "" {
			p.flush()
			continue
		}

		obsolete := false
		if strings.HasPrefix(line, "#~") {
			obsolete = true
			line = strings.TrimPrefix(line, "#~")
			line = strings.TrimPrefix(line, " ")
			if strings.HasPrefix(line, "|") {
				// Obsolete-previous annotation: tolerated, discarded.
				continue
			}
		}

		if err := p.dispatch(line, obsolete); err != nil {
			return nil, err
		}
	}
	p.flush()

	if p.cat.Encoding == "" {
		p.cat.Encoding = "utf-8"
	}
	return &POFile{Catalog: p.cat}, nil
}

func (p *parser) dispatch(line string, obsolete bool) error {
	switch {
	case strings.HasPrefix(line, "#:"):
		p.ensureCurrent()
		if obsolete {
			p.current.Obsolete = true
		}
		for _, tok := range strings.Fields(strings.TrimSpace(line[2:])) {
			p.current.Occurrences = append(p.current.Occurrences, parseOccurrence(tok))
		}
		return nil

	case strings.HasPrefix(line, "#,"):
		p.ensureCurrent()
		if obsolete {
			p.current.Obsolete = true
		}
		for _, flag := range strings.Split(line[2:], ",") {
			flag = strings.TrimSpace(flag)
			if flag != "" {
				p.current.Flags = append(p.current.Flags, flag)
			}
		}
		return nil

	case strings.HasPrefix(line, "#."):
		p.ensureCurrent()
		if obsolete {
			p.current.Obsolete = true
		}
		p.current.TComment = append(p.current.TComment, strings.TrimSpace(line[2:]))
		return nil

	case strings.HasPrefix(line, "#|"):
		p.ensureCurrent()
		if obsolete {
			p.current.Obsolete = true
		}
		return p.dispatchPrevious(strings.TrimSpace(line[2:]))

	case strings.HasPrefix(line, "#"):
		p.ensureCurrent()
		if obsolete {
			p.current.Obsolete = true
		}
		comment := line[1:]
		comment = strings.TrimPrefix(comment, " ")
		p.current.Comment = append(p.current.Comment, comment)
		return nil

	case strings.HasPrefix(line, "msgctxt "):
		if p.current != nil && p.seenMsgID {
			p.flush()
		}
		p.ensureCurrent()
		if obsolete {
			p.current.Obsolete = true
		}
		val, err := parseQuoted(strings.TrimPrefix(line, "msgctxt "), p.lineNum)
		if err != nil {
			return err
		}
		p.current.MsgCtxt = val
		p.field = fMsgCtxt
		return nil

	case strings.HasPrefix(line, "msgid_plural "):
		p.ensureCurrent()
		if obsolete {
			p.current.Obsolete = true
		}
		val, err := parseQuoted(strings.TrimPrefix(line, "msgid_plural "), p.lineNum)
		if err != nil {
			return err
		}
		p.current.MsgIDPlural = val
		if p.current.MsgStrPlural == nil {
			p.current.MsgStrPlural = make(map[int]string)
		}
		p.field = fMsgIDPlural
		return nil

	case strings.HasPrefix(line, "msgid "):
		if p.current != nil && p.seenMsgID {
			p.flush()
		}
		p.ensureCurrent()
		if obsolete {
			p.current.Obsolete = true
		}
		val, err := parseQuoted(strings.TrimPrefix(line, "msgid "), p.lineNum)
		if err != nil {
			return err
		}
		p.current.MsgID = val
		p.field = fMsgID
		p.seenMsgID = true
		return nil

	case strings.HasPrefix(line, "msgstr["):
		p.ensureCurrent()
		if obsolete {
			p.current.Obsolete = true
		}
		bracketEnd := strings.Index(line, "] ")
		if bracketEnd < 0 {
			return p.errf("invalid msgstr[] format")
		}
		idxStr := line[len("msgstr[") : bracketEnd]
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return p.errf("invalid msgstr[] index: %s", idxStr)
		}
		val, err := parseQuoted(line[bracketEnd+2:], p.lineNum)
		if err != nil {
			return err
		}
		if p.current.MsgStrPlural == nil {
			p.current.MsgStrPlural = make(map[int]string)
		}
		p.current.MsgStrPlural[idx] = val
		p.field = fMsgStrPlural
		p.pluralIdx = idx
		return nil

	case strings.HasPrefix(line, "msgstr "):
		p.ensureCurrent()
		if obsolete {
			p.current.Obsolete = true
		}
		val, err := parseQuoted(strings.TrimPrefix(line, "msgstr "), p.lineNum)
		if err != nil {
			return err
		}
		p.current.MsgStr = val
		p.field = fMsgStr
		return nil

	case strings.HasPrefix(line, "\""):
		if p.current == nil {
			return nil
		}
		val, err := parseQuoted(line, p.lineNum)
		if err != nil {
			return err
		}
		switch p.field {
		case fMsgCtxt:
			p.current.MsgCtxt += val
		case fMsgID:
			p.current.MsgID += val
		case fMsgIDPlural:
			p.current.MsgIDPlural += val
		case fMsgStr:
			p.current.MsgStr += val
		case fMsgStrPlural:
			p.current.MsgStrPlural[p.pluralIdx] += val
		}
		return nil
	}

	// Unrecognized content between entries is tolerated silently.
	return nil
}

// dispatchPrevious handles "#| ..." lines: the keyword form opens a
// previous-value field, the bare-quote form continues whichever one
// is currently open.
func (p *parser) dispatchPrevious(rest string) error {
	switch {
	case strings.HasPrefix(rest, "msgctxt "):
		val, err := parseQuoted(strings.TrimPrefix(rest, "msgctxt "), p.lineNum)
		if err != nil {
			return err
		}
		p.current.PreviousMsgCtxt = val
		p.field = fPrevMsgCtxt
	case strings.HasPrefix(rest, "msgid_plural "):
		val, err := parseQuoted(strings.TrimPrefix(rest, "msgid_plural "), p.lineNum)
		if err != nil {
			return err
		}
		p.current.PreviousMsgIDPlural = val
		p.field = fPrevMsgIDPlural
	case strings.HasPrefix(rest, "msgid "):
		val, err := parseQuoted(strings.TrimPrefix(rest, "msgid "), p.lineNum)
		if err != nil {
			return err
		}
		p.current.PreviousMsgID = val
		p.field = fPrevMsgID
	case strings.HasPrefix(rest, "\""):
		val, err := parseQuoted(rest, p.lineNum)
		if err != nil {
			return err
		}
		switch p.field {
		case fPrevMsgCtxt:
			p.current.PreviousMsgCtxt += val
		case fPrevMsgID:
			p.current.PreviousMsgID += val
		case fPrevMsgIDPlural:
			p.current.PreviousMsgIDPlural += val
		}
	}
	return nil
}

// Read parses a PO/POT file from an already-open reader. The bytes are
// parsed as-is, with no charset conversion; Encoding is set to the
// charset DetectPO finds in the header, or utf-8 if none. The caller
// is responsible for closing r; Read never closes a handle it didn't
// open itself.
func Read(r io.Reader) (*POFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading PO source: %w", err)
	}
	pf, err := Parse(string(data))
	if err != nil {
		return nil, err
	}
	pf.Encoding = encoding.DetectPO(data, pf.Encoding)
	return pf, nil
}

// ReadFile opens and parses a PO/POT file from disk.
func ReadFile(path string) (*POFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pf, err := Read(f)
	if err != nil {
		return nil, err
	}
	pf.FPath = path
	return pf, nil
}
