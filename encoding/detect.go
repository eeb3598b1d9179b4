// Package encoding detects the charset declared in a catalog's
// Content-Type header, for both PO text buffers and MO binaries, per
// spec.md §4.7.
package encoding

import (
	"regexp"
)

// DefaultCharset is returned when no Content-Type charset is found.
const DefaultCharset = "utf-8"

var contentTypeRe = regexp.MustCompile(`(?i)Content-Type:[^\n]*charset=([^\s\\"]+)`)

// headerScanLimit bounds how much of a buffer DetectPO scans: the
// header always appears in the first few hundred bytes of a PO file,
// so there's no need to regex the whole document.
const headerScanLimit = 4096

// DetectPO returns the charset declared by a PO buffer's
// "Content-Type: text/plain; charset=NAME" header line, or def if
// none is found.
func DetectPO(data []byte, def string) string {
	if def == "" {
		def = DefaultCharset
	}
	scan := data
	if len(scan) > headerScanLimit {
		scan = scan[:headerScanLimit]
	}
	if m := contentTypeRe.FindSubmatch(scan); m != nil {
		return string(m[1])
	}
	return def
}

// DetectMO returns the charset declared in a compiled MO file's header
// entry (the empty-msgid translation's Content-Type line), or def if
// none is found. It only needs to locate the header's translation
// bytes, not decode the whole catalog.
func DetectMO(data []byte, def string) string {
	if def == "" {
		def = DefaultCharset
	}
	header, ok := headerTranslation(data)
	if !ok {
		return def
	}
	if m := contentTypeRe.FindSubmatch(header); m != nil {
		return string(m[1])
	}
	return def
}
