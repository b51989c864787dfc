package vocab

import "path/filepath"

// Level describes one JLPT proficiency level and the name of its source
// CSV file in the upstream word list repository.
type Level struct {
	Name       string
	SourceFile string
}

// Levels is the default level table, easiest level first. Components take
// the table through their configuration so tests can substitute a shorter
// one.
var Levels = []Level{
	{Name: "N5", SourceFile: "n5.csv"},
	{Name: "N4", SourceFile: "n4.csv"},
	{Name: "N3", SourceFile: "n3.csv"},
	{Name: "N2", SourceFile: "n2.csv"},
	{Name: "N1", SourceFile: "n1.csv"},
}

// LevelFile returns the conventional dataset path for a level,
// e.g. vocabulary/N5.json
func LevelFile(dir, level string) string {
	return filepath.Join(dir, level+".json")
}
