package translate

import (
	"fmt"
	"strings"
)

// Language identifies one translation target
type Language struct {
	Code string // Provider-facing code, possibly region-qualified like "zh-cn"
	Name string // Native display name
}

// BaseCode returns the code portion before any region qualifier. It is the
// key the translation is stored under in an entry's meanings map.
func (l Language) BaseCode() string {
	if i := strings.Index(l.Code, "-"); i >= 0 {
		return l.Code[:i]
	}
	return l.Code
}

// DefaultLanguages is the stock target language table
var DefaultLanguages = []Language{
	{Code: "zh-cn", Name: "中文"},
	{Code: "ne", Name: "नेपाली"},
	{Code: "vi", Name: "Tiếng Việt"},
	{Code: "my", Name: "မြန်မာ"},
	{Code: "ko", Name: "한국어"},
	{Code: "ar", Name: "العربية"},
	{Code: "es", Name: "Español"},
	{Code: "de", Name: "Deutsch"},
	{Code: "fr", Name: "Français"},
}

// ListLanguages prints the target language table
func ListLanguages(languages []Language) {
	fmt.Printf("Target languages (%d):\n\n", len(languages))
	for _, lang := range languages {
		fmt.Printf("  %-6s %s", lang.Code, lang.Name)
		if base := lang.BaseCode(); base != lang.Code {
			fmt.Printf(" (stored as %s)", base)
		}
		fmt.Println()
	}
	fmt.Printf("\nEvery entry additionally keeps its English meaning under \"en\".\n")
}
