package table

import (
	"fmt"
	"strconv"
)

// SyntaxError reports a malformed token or field in table source.
type SyntaxError struct {
	File string
	Pos  Position
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%s: syntax error: %s", e.File, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: syntax error: %s", e.Pos, e.Msg)
}

func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}
