// File: stringx.go
// Title: String Utility Functions
// Description: Blank checks, Unicode-safe truncation and case-insensitive
//              prefix matching.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-14
// Modified: 2025-09-14
//
// Change History:
// - 2025-09-14 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string has length 0
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate shortens a string to at most maxLen runes, appending the ellipsis
// when something was cut. Multi-byte characters are never split.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// HasPrefixFold reports whether s begins with prefix under Unicode case
// folding. Intended for completion over ASCII identifiers.
func HasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}
