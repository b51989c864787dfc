package internal

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isWordRune(r) || r == '-' || r == '_' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isWordRune checks if a rune is safe to keep in a filename: ASCII
// alphanumerics plus Japanese kana and kanji
func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		(r >= '぀' && r <= 'ヿ') || // hiragana and katakana
		(r >= '一' && r <= '鿿') // CJK unified ideographs
}
