package patch

import (
	"fmt"

	"codeberg.org/snonux/tangocho/internal/vocab"
)

// Options configures a patch run
type Options struct {
	SamplePath string // Dataset whose meanings maps are authoritative
	TargetPath string // Dataset to update in place
}

// DefaultOptions returns the conventional N5 sample and target paths
func DefaultOptions() *Options {
	return &Options{
		SamplePath: "vocabulary/N5_sample.json",
		TargetPath: "vocabulary/N5.json",
	}
}

// Apply copies the meanings map of every sample entry onto the target
// entries with the same word and rewrites the target file. Target entries
// without a matching sample word are untouched. The target is rewritten
// even when nothing matched. Returns the number of updated entries.
func Apply(options *Options) (int, error) {
	if options == nil {
		options = DefaultOptions()
	}

	sample, err := vocab.Load(options.SamplePath)
	if err != nil {
		return 0, err
	}

	target, err := vocab.Load(options.TargetPath)
	if err != nil {
		return 0, err
	}

	meaningsByWord := make(map[string]map[string]string, len(sample))
	for _, entry := range sample {
		meaningsByWord[entry.Word] = entry.Meanings
	}

	updated := 0
	for i := range target {
		meanings, ok := meaningsByWord[target[i].Word]
		if !ok {
			continue
		}
		target[i].Meanings = meanings
		updated++
		fmt.Printf("Updated: %s\n", target[i].Word)
	}

	if err := target.Save(options.TargetPath); err != nil {
		return 0, err
	}

	fmt.Printf("\n✓ Updated %d words in %s\n", updated, options.TargetPath)
	return updated, nil
}
