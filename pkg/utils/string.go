// Package utils provides small string helpers shared by the CLI tools.
package utils

// Truncate shortens s to at most max runes, appending "..." when content
// was dropped.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max]) + "..."
}

// Plural chooses between the singular and plural form of a word for n.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}

	return plural
}
