package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/tangocho/internal"
	"codeberg.org/snonux/tangocho/internal/anki"
	"codeberg.org/snonux/tangocho/internal/archive"
	"codeberg.org/snonux/tangocho/internal/convert"
	"codeberg.org/snonux/tangocho/internal/fetch"
	"codeberg.org/snonux/tangocho/internal/patch"
	"codeberg.org/snonux/tangocho/internal/translate"
	"codeberg.org/snonux/tangocho/internal/vocab"
)

// vocabDir returns the vocabulary directory, preferring an explicit flag
// over the config file
func vocabDir(flags *Flags) string {
	if flags.VocabDir == "vocabulary" && viper.IsSet("vocab.directory") {
		return viper.GetString("vocab.directory")
	}
	return flags.VocabDir
}

func runFetch(cmd *cobra.Command, flags *Flags) error {
	dir := vocabDir(flags)

	// Handle --archive flag. A missing directory means there is nothing
	// to archive yet.
	if flags.Archive {
		if _, err := os.Stat(dir); err == nil {
			archived, err := archive.ArchiveVocabulary(dir)
			if err != nil {
				return fmt.Errorf("failed to archive vocabulary: %w", err)
			}
			fmt.Printf("Archived existing vocabulary to %s\n", archived)
		}
	}

	config := fetch.DefaultConfig()
	config.Dir = dir
	config.BaseURL = flags.BaseURL

	// Use config file value if not overridden by flags
	if flags.BaseURL == fetch.DefaultBaseURL && viper.IsSet("fetch.base_url") {
		config.BaseURL = viper.GetString("fetch.base_url")
	}

	fetcher := fetch.NewFetcher(config)
	_, err := fetcher.Run(cmd.Context())
	return err
}

func runConvert(args []string) error {
	count, err := convert.CSVToJSON(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("Converted %d words from %s to %s\n", count, args[0], args[1])
	return nil
}

func runMerge(flags *Flags, args []string) error {
	count, err := convert.MergeFiles(args, flags.Output)
	if err != nil {
		return err
	}

	fmt.Printf("Merged %d unique words into %s\n", count, flags.Output)
	return nil
}

func runTranslate(cmd *cobra.Command, flags *Flags, args []string) error {
	providerConfig := translate.DefaultProviderConfig()
	providerConfig.Provider = flags.Provider
	providerConfig.Model = flags.Model
	providerConfig.OpenAIKey = GetOpenAIKey()
	providerConfig.GeminiKey = GetGeminiKey()

	// Use config file values if not overridden by flags
	if flags.Provider == "openai" && viper.IsSet("translate.provider") {
		providerConfig.Provider = viper.GetString("translate.provider")
	}
	if flags.Model == "" && viper.IsSet("translate.model") {
		providerConfig.Model = viper.GetString("translate.model")
	}

	provider, err := translate.NewProvider(providerConfig)
	if err != nil {
		return err
	}

	options := translate.DefaultOptions()
	options.Dir = vocabDir(flags)
	options.Delay = flags.Delay
	if flags.Delay == 500*time.Millisecond && viper.IsSet("translate.delay") {
		options.Delay = viper.GetDuration("translate.delay")
	}

	translator := translate.NewTranslator(provider, options)

	// The special input "all" walks the per-level files
	if args[0] == "all" {
		return translator.TranslateAll(cmd.Context())
	}

	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	}

	return translator.TranslateFile(cmd.Context(), args[0], outputPath)
}

func runPatch(flags *Flags) error {
	options := patch.DefaultOptions()
	options.SamplePath = flags.SamplePath
	options.TargetPath = flags.TargetPath

	_, err := patch.Apply(options)
	return err
}

func runExport(flags *Flags, args []string) error {
	dataset, err := vocab.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	options := anki.DefaultExporterOptions()
	options.DeckName = flags.DeckName
	options.OutputPath = flags.ExportPath
	if options.OutputPath == "" {
		options.OutputPath = exportFileName(args[0], flags.ExportCSV)
	}

	exporter := anki.NewExporter(options)
	exporter.AddDataset(dataset)

	if flags.ExportCSV {
		err = exporter.ExportCSV()
	} else {
		err = exporter.ExportAPKG()
	}
	if err != nil {
		return err
	}

	total, translated := exporter.Stats()
	fmt.Printf("Exported %d cards (%d with translations) to %s\n", total, translated, options.OutputPath)
	return nil
}

// exportFileName derives the output file name from the input dataset path
func exportFileName(inputPath string, csv bool) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	name := internal.SanitizeFilename(base)
	if name == "" {
		name = "vocabulary"
	}

	if csv {
		return name + ".csv"
	}
	return name + ".apkg"
}
