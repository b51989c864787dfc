package vocab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Entry is a single vocabulary item. Word holds the Japanese expression,
// Reading its kana reading and Meaning the English gloss. Meanings, when
// present, maps language codes to translated glosses and always contains
// at least the "en" key.
type Entry struct {
	Word     string            `json:"word"`
	Reading  string            `json:"reading"`
	Meaning  string            `json:"meaning"`
	Meanings map[string]string `json:"meanings,omitempty"`
}

// HasMeanings reports whether the entry already carries a populated
// multi-language meanings map
func (e *Entry) HasMeanings() bool {
	return len(e.Meanings) > 0
}

// Dataset is an ordered collection of vocabulary entries
type Dataset []Entry

// Load reads a dataset from a JSON file
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var dataset Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return dataset, nil
}

// Save writes the dataset to path as a pretty-printed JSON array with
// two-space indentation, replacing any existing file. Non-ASCII text is
// written verbatim, not escaped. Parent directories are created as needed.
func (d Dataset) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if d == nil {
		d = Dataset{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode vocabulary: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Merge concatenates datasets in order, keeping the first entry seen for
// each word and dropping later duplicates
func Merge(datasets ...Dataset) Dataset {
	merged := Dataset{}
	seen := make(map[string]bool)

	for _, dataset := range datasets {
		for _, entry := range dataset {
			if seen[entry.Word] {
				continue
			}
			seen[entry.Word] = true
			merged = append(merged, entry)
		}
	}

	return merged
}
