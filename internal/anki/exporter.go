package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/tangocho/internal/translate"
	"codeberg.org/snonux/tangocho/internal/vocab"
)

// Card represents a single Anki flashcard
type Card struct {
	Word         string // The Japanese word
	Reading      string // Kana reading
	Meaning      string // English meaning
	Translations string // Rendered translations, one language per line
}

// ExporterOptions configures the Anki export
type ExporterOptions struct {
	OutputPath     string               // Output file path
	DeckName       string               // Deck name shown in Anki
	IncludeHeaders bool                 // Include CSV headers
	Languages      []translate.Language // Languages rendered into the Translations field
}

// DefaultExporterOptions returns sensible defaults
func DefaultExporterOptions() *ExporterOptions {
	return &ExporterOptions{
		OutputPath:     "vocabulary.apkg",
		DeckName:       "Japanese Vocabulary",
		IncludeHeaders: true,
		Languages:      translate.DefaultLanguages,
	}
}

// Exporter creates Anki-compatible files from vocabulary datasets
type Exporter struct {
	options *ExporterOptions
	cards   []Card
}

// NewExporter creates a new Anki exporter
func NewExporter(options *ExporterOptions) *Exporter {
	if options == nil {
		options = DefaultExporterOptions()
	}
	return &Exporter{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (e *Exporter) AddCard(card Card) {
	e.cards = append(e.cards, card)
}

// GetCards returns a slice of all cards for modification
func (e *Exporter) GetCards() []Card {
	return e.cards
}

// AddDataset converts dataset entries into cards. Entries without a word
// are skipped. Returns the number of cards added.
func (e *Exporter) AddDataset(dataset vocab.Dataset) int {
	added := 0
	for _, entry := range dataset {
		if entry.Word == "" {
			continue
		}

		e.AddCard(Card{
			Word:         entry.Word,
			Reading:      entry.Reading,
			Meaning:      entry.Meaning,
			Translations: e.renderTranslations(entry),
		})
		added++
	}

	return added
}

// renderTranslations formats the translated meanings of an entry, one
// "Language: text" line per configured language, in configuration order.
// English is left out because the Meaning field already carries it.
func (e *Exporter) renderTranslations(entry vocab.Entry) string {
	if !entry.HasMeanings() {
		return ""
	}

	lines := make([]string, 0, len(e.options.Languages))
	for _, lang := range e.options.Languages {
		text, ok := entry.Meanings[lang.BaseCode()]
		if !ok || text == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", lang.Name, text))
	}

	return strings.Join(lines, "<br>")
}

// ExportCSV creates a CSV file for Anki import
func (e *Exporter) ExportCSV() error {
	file, err := os.Create(e.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if e.options.IncludeHeaders {
		headers := []string{"Word", "Reading", "Meaning", "Translations"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range e.cards {
		record := []string{
			card.Word,
			card.Reading,
			card.Meaning,
			card.Translations,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

// ExportAPKG creates a proper .apkg file for Anki import
func (e *Exporter) ExportAPKG() error {
	builder := NewAPKGBuilder(e.options.DeckName)

	for _, card := range e.cards {
		builder.AddCard(card)
	}

	return builder.Build(e.options.OutputPath)
}

// Stats returns statistics about the card collection
func (e *Exporter) Stats() (totalCards, withTranslations int) {
	totalCards = len(e.cards)

	for _, card := range e.cards {
		if card.Translations != "" {
			withTranslations++
		}
	}

	return
}
