package gettext

import "fmt"

// POParseError signals a malformed PO textual input. It carries the
// 1-based line number where the parser gave up.
type POParseError struct {
	Message string
	Line    int
}

func (e *POParseError) Error() string {
	return fmt.Sprintf("%s (line %d)", e.Message, e.Line)
}

// MOParseError signals a malformed binary MO input (bad magic, bad
// version, a truncated table).
type MOParseError struct {
	Message string
}

func (e *MOParseError) Error() string {
	return e.Message
}
