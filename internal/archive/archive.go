package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveVocabulary moves the vocabulary directory into a timestamped
// directory under archive/ next to it and returns the new path. The
// caller re-creates the vocabulary directory afterwards as needed.
func ArchiveVocabulary(vocabDir string) (string, error) {
	if _, err := os.Stat(vocabDir); os.IsNotExist(err) {
		return "", fmt.Errorf("vocabulary directory does not exist: %s", vocabDir)
	}

	archiveDir := filepath.Join(filepath.Dir(vocabDir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := fmt.Sprintf("%s-%s", filepath.Base(vocabDir), time.Now().Format("20060102-150405"))
	archivePath := filepath.Join(archiveDir, base)

	// Same-second reruns get a numeric suffix
	for n := 2; ; n++ {
		if _, err := os.Stat(archivePath); os.IsNotExist(err) {
			break
		}
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%d", base, n))
	}

	if err := os.Rename(vocabDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive vocabulary directory: %w", err)
	}

	return archivePath, nil
}
