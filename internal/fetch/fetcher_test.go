package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/tangocho/internal/vocab"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BaseURL != DefaultBaseURL {
		t.Errorf("Expected base URL %s, got %s", DefaultBaseURL, config.BaseURL)
	}
	if config.Dir != "vocabulary" {
		t.Errorf("Expected output directory 'vocabulary', got %s", config.Dir)
	}
	if len(config.Levels) != 5 {
		t.Errorf("Expected 5 levels, got %d", len(config.Levels))
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", config.Timeout)
	}
}

func TestNewFetcher_NilConfig(t *testing.T) {
	fetcher := NewFetcher(nil)
	if fetcher == nil {
		t.Fatal("NewFetcher returned nil")
	}
	if fetcher.config == nil {
		t.Error("Fetcher config should not be nil")
	}
}

func TestFetchLevel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/n5.csv" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("expression,reading,meaning\n学生,がくせい,student\n水,,water\n,みず,skipped\n何か,なにか,\n"))
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	fetcher := NewFetcher(&Config{
		BaseURL: server.URL + "/",
		Dir:     tmpDir,
		Levels:  []vocab.Level{{Name: "N5", SourceFile: "n5.csv"}},
		Timeout: 5 * time.Second,
	})

	count, err := fetcher.FetchLevel(context.Background(), vocab.Level{Name: "N5", SourceFile: "n5.csv"})
	if err != nil {
		t.Fatalf("FetchLevel failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 words, got %d", count)
	}

	dataset, err := vocab.Load(vocab.LevelFile(tmpDir, "N5"))
	if err != nil {
		t.Fatalf("Failed to load output: %v", err)
	}
	if len(dataset) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(dataset))
	}
	if dataset[0].Word != "学生" || dataset[0].Reading != "がくせい" {
		t.Errorf("Unexpected first entry: %+v", dataset[0])
	}
	// Missing reading falls back to the expression
	if dataset[1].Word != "水" || dataset[1].Reading != "水" {
		t.Errorf("Expected reading to fall back to expression, got %+v", dataset[1])
	}
}

func TestFetchLevel_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	fetcher := NewFetcher(&Config{
		BaseURL: server.URL + "/",
		Dir:     tmpDir,
		Levels:  []vocab.Level{{Name: "N5", SourceFile: "n5.csv"}},
		Timeout: 5 * time.Second,
	})

	_, err := fetcher.FetchLevel(context.Background(), vocab.Level{Name: "N5", SourceFile: "n5.csv"})
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var downloadErr *DownloadError
	if !errors.As(err, &downloadErr) {
		t.Fatalf("Expected DownloadError, got %T: %v", err, err)
	}
	if downloadErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", downloadErr.StatusCode)
	}

	// No file may be written for a failed level
	if _, statErr := os.Stat(vocab.LevelFile(tmpDir, "N5")); !os.IsNotExist(statErr) {
		t.Error("Expected no output file for failed level")
	}
}

func TestRun_ContinuesAfterFailedLevel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/n5.csv":
			http.Error(w, "boom", http.StatusInternalServerError)
		case "/n4.csv":
			w.Write([]byte("expression,reading,meaning\n会う,あう,to meet\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	fetcher := NewFetcher(&Config{
		BaseURL: server.URL + "/",
		Dir:     tmpDir,
		Levels: []vocab.Level{
			{Name: "N5", SourceFile: "n5.csv"},
			{Name: "N4", SourceFile: "n4.csv"},
		},
		Timeout: 5 * time.Second,
	})

	total, err := fetcher.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if total != 1 {
		t.Errorf("Expected 1 word in total, got %d", total)
	}

	if _, statErr := os.Stat(vocab.LevelFile(tmpDir, "N5")); !os.IsNotExist(statErr) {
		t.Error("Expected no N5 file after failed download")
	}
	if _, statErr := os.Stat(vocab.LevelFile(tmpDir, "N4")); statErr != nil {
		t.Errorf("Expected N4 file to exist: %v", statErr)
	}
}

func TestParseSourceCSV(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want int
	}{
		{
			name: "fields are trimmed",
			csv:  "expression,reading,meaning\n 学生 , がくせい , student \n",
			want: 1,
		},
		{
			name: "extra columns tolerated",
			csv:  "expression,reading,meaning,tags\n学生,がくせい,student,noun\n",
			want: 1,
		},
		{
			name: "unknown columns yield no entries",
			csv:  "a,b,c\n1,2,3\n",
			want: 0,
		},
		{
			name: "header only",
			csv:  "expression,reading,meaning\n",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset, err := parseSourceCSV(strings.NewReader(tt.csv))
			if err != nil {
				t.Fatalf("parseSourceCSV failed: %v", err)
			}
			if len(dataset) != tt.want {
				t.Errorf("Expected %d entries, got %d", tt.want, len(dataset))
			}
		})
	}
}
