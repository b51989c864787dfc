package internal

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ascii name",
			input:    "N5",
			expected: "N5",
		},
		{
			name:     "japanese word",
			input:    "食べる",
			expected: "食べる",
		},
		{
			name:     "katakana",
			input:    "テスト",
			expected: "テスト",
		},
		{
			name:     "path separators replaced",
			input:    "a/b\\c",
			expected: "a_b_c",
		},
		{
			name:     "spaces and punctuation replaced",
			input:    "my list (v2)",
			expected: "my_list__v2_",
		},
		{
			name:     "dashes and underscores kept",
			input:    "n5-words_2024",
			expected: "n5-words_2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeFilename(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
