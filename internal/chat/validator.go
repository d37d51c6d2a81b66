package chat

import (
	"strings"
	"unicode"
)

// IsSendable reports whether text contains anything other than leading and
// trailing whitespace. The text itself is never modified.
func IsSendable(text string) bool {
	return len(strings.TrimFunc(text, isBlank)) > 0
}

// isBlank matches the whitespace a browser's String.prototype.trim strips:
// the Unicode space separators plus the byte order mark, but not NEL.
func isBlank(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return unicode.IsSpace(r) && r != '\u0085'
}
