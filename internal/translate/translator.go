package translate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"codeberg.org/snonux/tangocho/internal/vocab"
)

// Options configures a Translator
type Options struct {
	Languages []Language    // Target languages
	Delay     time.Duration // Pause after each provider call
	Dir       string        // Vocabulary directory used by TranslateAll
	Levels    []vocab.Level // Level table used by TranslateAll
}

// DefaultOptions returns the stock translator options
func DefaultOptions() *Options {
	return &Options{
		Languages: DefaultLanguages,
		Delay:     500 * time.Millisecond,
		Dir:       "vocabulary",
		Levels:    vocab.Levels,
	}
}

// Result is the outcome of translating one text into one language
type Result struct {
	Lang     string // Base language code the translation is stored under
	Text     string // Translated text, or the English original when Fallback is set
	Fallback bool   // True when the provider failed and English was kept
}

// Translator fills the meanings maps of vocabulary entries
type Translator struct {
	provider Provider
	options  *Options
	cache    *Cache
}

// NewTranslator creates a translator that fetches translations from the
// given provider
func NewTranslator(provider Provider, options *Options) *Translator {
	if options == nil {
		options = DefaultOptions()
	}
	return &Translator{
		provider: provider,
		options:  options,
		cache:    NewCache(),
	}
}

// AugmentEntry translates the entry's English meaning into every configured
// language and attaches the resulting meanings map, seeded with the English
// meaning under "en". Entries that already have meanings, or have no
// meaning to translate from, are left untouched and yield nil results.
func (t *Translator) AugmentEntry(ctx context.Context, entry *vocab.Entry) []Result {
	if entry.HasMeanings() || entry.Meaning == "" {
		return nil
	}

	results := t.TranslateMeaning(ctx, entry.Meaning)

	meanings := map[string]string{"en": entry.Meaning}
	for _, result := range results {
		meanings[result.Lang] = result.Text
	}
	entry.Meanings = meanings

	return results
}

// TranslateMeaning translates one English meaning into every configured
// language, one result per language. A failed provider call yields a
// fallback result carrying the English text; it never aborts the batch.
func (t *Translator) TranslateMeaning(ctx context.Context, meaning string) []Result {
	results := make([]Result, 0, len(t.options.Languages))
	for _, lang := range t.options.Languages {
		results = append(results, t.translateOne(ctx, meaning, lang))
	}
	return results
}

func (t *Translator) translateOne(ctx context.Context, meaning string, lang Language) Result {
	if cached, ok := t.cache.Get(meaning, lang.Code); ok {
		fmt.Printf("  → %s: %s (cached)\n", lang.Name, cached)
		return Result{Lang: lang.BaseCode(), Text: cached}
	}

	translation, err := t.provider.Translate(ctx, meaning, lang.Code)
	t.pause()
	if err != nil {
		fmt.Printf("  ✗ Error translating to %s: %v\n", lang.Name, err)
		return Result{Lang: lang.BaseCode(), Text: meaning, Fallback: true}
	}

	fmt.Printf("  → %s: %s\n", lang.Name, translation)
	t.cache.Add(meaning, lang.Code, translation)

	return Result{Lang: lang.BaseCode(), Text: translation}
}

func (t *Translator) pause() {
	if t.options.Delay > 0 {
		time.Sleep(t.options.Delay)
	}
}

// TranslateFile translates every entry of a dataset file and writes the
// updated dataset to outputPath. An empty outputPath updates the input file
// in place. The output is written once, after all entries are processed, so
// an interrupted run leaves the destination untouched.
func (t *Translator) TranslateFile(ctx context.Context, inputPath, outputPath string) error {
	if outputPath == "" {
		outputPath = inputPath
	}

	fmt.Printf("Reading %s...\n", inputPath)
	dataset, err := vocab.Load(inputPath)
	if err != nil {
		return err
	}

	total := len(dataset)
	fmt.Printf("Translating %d words to %d languages...\n", total, len(t.options.Languages))

	translated := 0
	skipped := 0
	fallbacks := 0

	for i := range dataset {
		entry := &dataset[i]

		if entry.HasMeanings() {
			fmt.Printf("[%d/%d] Skipping '%s' (already translated)\n", i+1, total, entry.Word)
			skipped++
			continue
		}
		if entry.Meaning == "" {
			fmt.Printf("[%d/%d] Skipping '%s' (no meaning)\n", i+1, total, entry.Word)
			skipped++
			continue
		}

		fmt.Printf("[%d/%d] Translating '%s' (%s)...\n", i+1, total, entry.Word, entry.Meaning)
		for _, result := range t.AugmentEntry(ctx, entry) {
			if result.Fallback {
				fallbacks++
			}
		}
		translated++
	}

	fmt.Printf("\n=== Translation Summary ===\n")
	fmt.Printf("Total words: %d\n", total)
	fmt.Printf("Translated: %d\n", translated)
	fmt.Printf("Skipped: %d\n", skipped)
	if fallbacks > 0 {
		fmt.Printf("English fallbacks: %d\n", fallbacks)
	}

	fmt.Printf("\nWriting to %s...\n", outputPath)
	if err := dataset.Save(outputPath); err != nil {
		return err
	}

	fmt.Printf("✓ Complete! Updated %s\n", outputPath)
	return nil
}

// TranslateAll translates the conventional per-level dataset files in the
// vocabulary directory, in place. Levels whose file does not exist are
// skipped with a notice.
func (t *Translator) TranslateAll(ctx context.Context) error {
	for _, level := range t.options.Levels {
		path := vocab.LevelFile(t.options.Dir, level.Name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Printf("Skipping %s: file not found\n", level.Name)
			continue
		}

		fmt.Printf("\n%s\n", strings.Repeat("=", 60))
		fmt.Printf("Processing %s\n", level.Name)
		fmt.Printf("%s\n", strings.Repeat("=", 60))

		if err := t.TranslateFile(ctx, path, ""); err != nil {
			return err
		}
	}

	return nil
}
