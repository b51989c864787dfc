package cli

import (
	"time"

	"codeberg.org/snonux/tangocho/internal/fetch"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	VocabDir string

	// Fetch flags
	BaseURL string
	Archive bool

	// Merge flags
	Output string

	// Translate flags
	Provider string
	Model    string
	Delay    time.Duration

	// Patch flags
	SamplePath string
	TargetPath string

	// Export flags
	ExportPath string
	DeckName   string
	ExportCSV  bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		VocabDir:   "vocabulary",
		BaseURL:    fetch.DefaultBaseURL,
		Provider:   "openai",
		Delay:      500 * time.Millisecond,
		SamplePath: "vocabulary/N5_sample.json",
		TargetPath: "vocabulary/N5.json",
		DeckName:   "Japanese Vocabulary",
	}
}
