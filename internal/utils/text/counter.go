// Package text provides utilities for text processing.
package text

// CountRunes counts the number of Unicode characters in the given text.
// Article bodies may contain multi-byte characters (Japanese, emoji), so
// lengths are measured in runes instead of bytes.
func CountRunes(text string) int {
	return len([]rune(text))
}
