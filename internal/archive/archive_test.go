package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/tangocho/internal/testutil"
)

func makeVocabDir(t *testing.T, tmpDir string) string {
	t.Helper()

	vocabDir := filepath.Join(tmpDir, "vocabulary")
	if err := os.MkdirAll(vocabDir, 0755); err != nil {
		t.Fatalf("Failed to create vocabulary directory: %v", err)
	}
	path := filepath.Join(vocabDir, "N5.json")
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatalf("Failed to create dataset file: %v", err)
	}
	return vocabDir
}

func TestArchiveVocabulary(t *testing.T) {
	tmpDir := t.TempDir()
	vocabDir := makeVocabDir(t, tmpDir)

	archivePath, err := ArchiveVocabulary(vocabDir)
	if err != nil {
		t.Fatalf("ArchiveVocabulary failed: %v", err)
	}

	if _, err := os.Stat(vocabDir); !os.IsNotExist(err) {
		t.Error("Vocabulary directory still exists after archiving")
	}

	if !strings.HasPrefix(filepath.Base(archivePath), "vocabulary-") {
		t.Errorf("Archive name doesn't start with 'vocabulary-': %s", archivePath)
	}

	testutil.AssertFileExists(t, filepath.Join(archivePath, "N5.json"))
}

func TestArchiveVocabulary_NonExistentDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := ArchiveVocabulary(filepath.Join(tmpDir, "nonexistent"))
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveVocabulary_SameSecondReruns(t *testing.T) {
	tmpDir := t.TempDir()

	names := make(map[string]bool)
	for i := 0; i < 3; i++ {
		vocabDir := makeVocabDir(t, tmpDir)

		archivePath, err := ArchiveVocabulary(vocabDir)
		if err != nil {
			t.Fatalf("ArchiveVocabulary failed on iteration %d: %v", i, err)
		}
		names[filepath.Base(archivePath)] = true
	}

	if len(names) != 3 {
		t.Errorf("Expected 3 unique archive names, got %d: %v", len(names), names)
	}
}
