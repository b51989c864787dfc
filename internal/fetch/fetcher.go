package fetch

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"codeberg.org/snonux/tangocho/internal/vocab"
)

// DefaultBaseURL is where the JLPT word list CSV files are published
const DefaultBaseURL = "https://raw.githubusercontent.com/elzup/jlpt-word-list/master/src/"

// Config holds fetcher configuration
type Config struct {
	BaseURL string        // Base URL for the upstream raw CSV files
	Dir     string        // Output directory for per-level JSON files
	Levels  []vocab.Level // Levels to download
	Timeout time.Duration // Per-request timeout
}

// DefaultConfig returns the stock configuration pointing at the public
// jlpt-word-list repository
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Dir:     "vocabulary",
		Levels:  vocab.Levels,
		Timeout: 30 * time.Second,
	}
}

// Fetcher downloads per-level vocabulary CSV files and writes them out as
// JSON datasets
type Fetcher struct {
	config     *Config
	httpClient *http.Client
}

// NewFetcher creates a fetcher for the given configuration
func NewFetcher(config *Config) *Fetcher {
	if config == nil {
		config = DefaultConfig()
	}
	return &Fetcher{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// DownloadError indicates that the upstream server rejected a level request
type DownloadError struct {
	Level      string
	URL        string
	StatusCode int
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("downloading %s from %s: status %d", e.Level, e.URL, e.StatusCode)
}

// Run downloads every configured level in order. A failed level is reported
// on stderr, contributes zero words and no file, and does not stop the
// remaining levels. Returns the total number of words written.
func (f *Fetcher) Run(ctx context.Context) (int, error) {
	if err := os.MkdirAll(f.config.Dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	total := 0
	failed := 0

	for _, level := range f.config.Levels {
		fmt.Printf("Downloading %s vocabulary...\n", level.Name)

		count, err := f.FetchLevel(ctx, level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error downloading %s: %v\n", level.Name, err)
			failed++
			continue
		}

		fmt.Printf("  ✓ %s: %d words saved to %s\n", level.Name, count, vocab.LevelFile(f.config.Dir, level.Name))
		total += count
	}

	fmt.Printf("\n=== Download Summary ===\n")
	fmt.Printf("Total words: %d\n", total)
	if failed > 0 {
		fmt.Printf("Failed levels: %d\n", failed)
	}

	return total, nil
}

// FetchLevel downloads and converts a single level, writing its dataset
// file on success. Nothing is written when the download or conversion
// fails.
func (f *Fetcher) FetchLevel(ctx context.Context, level vocab.Level) (int, error) {
	dataset, err := f.downloadLevel(ctx, level)
	if err != nil {
		return 0, err
	}

	if err := dataset.Save(vocab.LevelFile(f.config.Dir, level.Name)); err != nil {
		return 0, err
	}

	return len(dataset), nil
}

func (f *Fetcher) downloadLevel(ctx context.Context, level vocab.Level) (vocab.Dataset, error) {
	url := f.config.BaseURL + level.SourceFile

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &DownloadError{
			Level:      level.Name,
			URL:        url,
			StatusCode: resp.StatusCode,
		}
	}

	return parseSourceCSV(resp.Body)
}

// parseSourceCSV maps the upstream CSV columns (expression, reading,
// meaning) onto vocabulary entries. Rows without an expression or meaning
// are dropped; a missing reading falls back to the expression itself.
func parseSourceCSV(r io.Reader) (vocab.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "﻿")

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
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

		word := strings.TrimSpace(field(record, columns, "expression"))
		if word == "" {
			continue
		}

		meaning := strings.TrimSpace(field(record, columns, "meaning"))
		if meaning == "" {
			continue
		}

		reading := strings.TrimSpace(field(record, columns, "reading"))
		if reading == "" {
			reading = word
		}

		dataset = append(dataset, vocab.Entry{
			Word:    word,
			Reading: reading,
			Meaning: meaning,
		})
	}

	return dataset, nil
}

func field(record []string, columns map[string]int, name string) string {
	index, ok := columns[name]
	if !ok || index >= len(record) {
		return ""
	}
	return record[index]
}
