package convert

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"codeberg.org/snonux/tangocho/internal/vocab"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestCSVToJSON(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "words.csv")
	jsonPath := filepath.Join(tmpDir, "words.json")

	writeFile(t, csvPath, "word,reading,meaning\n 学生 ,がくせい ,student\n,,\n")

	count, err := CSVToJSON(csvPath, jsonPath)
	if err != nil {
		t.Fatalf("CSVToJSON failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 converted word, got %d", count)
	}

	dataset, err := vocab.Load(jsonPath)
	if err != nil {
		t.Fatalf("Failed to load output: %v", err)
	}
	if len(dataset) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(dataset))
	}

	want := vocab.Entry{Word: "学生", Reading: "がくせい", Meaning: "student"}
	if !reflect.DeepEqual(dataset[0], want) {
		t.Errorf("Expected %+v, got %+v", want, dataset[0])
	}
}

func TestCSVToJSON_SkipsIncompleteRows(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want int
	}{
		{
			name: "empty word",
			csv:  "word,reading,meaning\n,よみ,meaning\n",
			want: 0,
		},
		{
			name: "whitespace-only reading",
			csv:  "word,reading,meaning\n言葉,   ,word\n",
			want: 0,
		},
		{
			name: "empty meaning",
			csv:  "word,reading,meaning\n言葉,ことば,\n",
			want: 0,
		},
		{
			name: "short row",
			csv:  "word,reading,meaning\n言葉,ことば\n",
			want: 0,
		},
		{
			name: "complete row among incomplete ones",
			csv:  "word,reading,meaning\n,,\n言葉,ことば,word\n",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			csvPath := filepath.Join(tmpDir, "in.csv")
			jsonPath := filepath.Join(tmpDir, "out.json")
			writeFile(t, csvPath, tt.csv)

			count, err := CSVToJSON(csvPath, jsonPath)
			if err != nil {
				t.Fatalf("CSVToJSON failed: %v", err)
			}
			if count != tt.want {
				t.Errorf("Expected %d words, got %d", tt.want, count)
			}
		})
	}
}

func TestCSVToJSON_MissingColumn(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "bad.csv")
	jsonPath := filepath.Join(tmpDir, "out.json")

	// No meaning column
	writeFile(t, csvPath, "word,reading\n学生,がくせい\n")

	_, err := CSVToJSON(csvPath, jsonPath)
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("Expected ErrMissingColumns, got %v", err)
	}

	if _, statErr := os.Stat(jsonPath); !os.IsNotExist(statErr) {
		t.Error("Expected no output file to be written")
	}
}

func TestCSVToJSON_ExtraColumnsTolerated(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "extra.csv")
	jsonPath := filepath.Join(tmpDir, "out.json")

	writeFile(t, csvPath, "tags,word,reading,meaning\nnoun,学生,がくせい,student\n")

	count, err := CSVToJSON(csvPath, jsonPath)
	if err != nil {
		t.Fatalf("CSVToJSON failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 word, got %d", count)
	}
}

func TestCSVToJSON_CreatesOutputDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "in.csv")
	jsonPath := filepath.Join(tmpDir, "vocabulary", "N5.json")

	writeFile(t, csvPath, "word,reading,meaning\n学生,がくせい,student\n")

	if _, err := CSVToJSON(csvPath, jsonPath); err != nil {
		t.Fatalf("CSVToJSON failed: %v", err)
	}
	if _, err := os.Stat(jsonPath); err != nil {
		t.Errorf("Expected output file in created directory: %v", err)
	}
}

func TestCSVToJSON_MissingInputFile(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := CSVToJSON(filepath.Join(tmpDir, "missing.csv"), filepath.Join(tmpDir, "out.json"))
	if err == nil {
		t.Error("Expected error for missing input file")
	}
}

func TestMergeFiles(t *testing.T) {
	tmpDir := t.TempDir()

	first := vocab.Dataset{{Word: "猫", Reading: "ねこ", Meaning: "cat"}}
	second := vocab.Dataset{
		{Word: "猫", Reading: "ねこ", Meaning: "feline"},
		{Word: "犬", Reading: "いぬ", Meaning: "dog"},
	}

	firstPath := filepath.Join(tmpDir, "first.json")
	secondPath := filepath.Join(tmpDir, "second.json")
	outputPath := filepath.Join(tmpDir, "merged.json")

	if err := first.Save(firstPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := second.Save(secondPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	count, err := MergeFiles([]string{firstPath, secondPath}, outputPath)
	if err != nil {
		t.Fatalf("MergeFiles failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 unique words, got %d", count)
	}

	merged, err := vocab.Load(outputPath)
	if err != nil {
		t.Fatalf("Failed to load merged output: %v", err)
	}
	if merged[0].Meaning != "cat" {
		t.Errorf("Expected first occurrence of 猫 to win, got meaning %q", merged[0].Meaning)
	}
}

func TestMergeFiles_SkipsUnparseableFiles(t *testing.T) {
	tmpDir := t.TempDir()

	good := vocab.Dataset{{Word: "水", Reading: "みず", Meaning: "water"}}
	goodPath := filepath.Join(tmpDir, "good.json")
	if err := good.Save(goodPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	brokenPath := filepath.Join(tmpDir, "broken.json")
	writeFile(t, brokenPath, "{not json")

	missingPath := filepath.Join(tmpDir, "missing.json")
	outputPath := filepath.Join(tmpDir, "merged.json")

	count, err := MergeFiles([]string{brokenPath, goodPath, missingPath}, outputPath)
	if err != nil {
		t.Fatalf("MergeFiles failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 word from the readable file, got %d", count)
	}
}
