// Package fetch downloads JLPT vocabulary CSV files from the upstream
// word list repository and converts them into per-level JSON datasets.
package fetch
