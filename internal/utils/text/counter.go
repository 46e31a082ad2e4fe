// Package text provides small utilities for text processing.
package text

import "unicode/utf8"

// CountRunes counts Unicode characters in the given text.
// Length limits on article text are defined in characters, not bytes, so
// multi-byte characters must count as one.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}
