// File: stringx.go
// Title: String Utilities
// Description: Small string helpers shared by the i18n tables and the
//              task detail view.

package stringx

import (
	"strings"
	"unicode/utf8"
)

// IsEmpty returns true if the string has zero length.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank returns true if the string contains at least one
// non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate shortens s to at most maxLen runes, appending ellipsis when
// truncation happened. maxLen includes the ellipsis.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	keep := maxLen - ellipsisLen
	if keep < 0 {
		keep = 0
	}

	runes := []rune(s)
	return string(runes[:keep]) + ellipsis
}

// FirstNonBlank returns the first argument that is not blank, or "".
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}
