package convert

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/tangocho/internal/vocab"
)

// requiredColumns are the CSV header columns a vocabulary file must have.
var requiredColumns = []string{"word", "reading", "meaning"}

// ErrMissingColumns indicates a CSV header without the required columns
var ErrMissingColumns = errors.New("CSV must have columns: word, reading, meaning")

// CSVToJSON converts a vocabulary CSV file into a JSON dataset file and
// returns the number of converted words. The CSV must have the columns
// word, reading and meaning; rows where any of the three is empty after
// trimming are skipped. Nothing is written when the header is invalid.
func CSVToJSON(csvPath, jsonPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", csvPath, err)
	}
	defer f.Close()

	dataset, err := readCSV(f)
	if err != nil {
		return 0, fmt.Errorf("failed to convert %s: %w", csvPath, err)
	}

	if err := dataset.Save(jsonPath); err != nil {
		return 0, err
	}

	return len(dataset), nil
}

func readCSV(r io.Reader) (vocab.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // short rows are skipped below, not fatal

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "﻿")

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w (got: %s)", ErrMissingColumns, strings.Join(header, ", "))
		}
	}

	dataset := vocab.Dataset{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		word := strings.TrimSpace(field(record, columns["word"]))
		reading := strings.TrimSpace(field(record, columns["reading"]))
		meaning := strings.TrimSpace(field(record, columns["meaning"]))
		if word == "" || reading == "" || meaning == "" {
			continue
		}

		dataset = append(dataset, vocab.Entry{
			Word:    word,
			Reading: reading,
			Meaning: meaning,
		})
	}

	return dataset, nil
}

func field(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}
	return record[index]
}

// MergeFiles merges vocabulary dataset files in the given order into a
// single output file, keeping the first entry seen for each word. Files
// that cannot be read or parsed are skipped with a warning. Returns the
// number of unique words written.
func MergeFiles(inputPaths []string, outputPath string) (int, error) {
	datasets := make([]vocab.Dataset, 0, len(inputPaths))
	for _, path := range inputPaths {
		dataset, err := vocab.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", path, err)
			continue
		}
		datasets = append(datasets, dataset)
	}

	merged := vocab.Merge(datasets...)
	if err := merged.Save(outputPath); err != nil {
		return 0, err
	}

	return len(merged), nil
}
