package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/tangocho/internal"
	"codeberg.org/snonux/tangocho/internal/translate"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tangocho",
		Short: "JLPT Vocabulary Dataset Builder",
		Long: `tangocho builds JLPT vocabulary datasets for language learning.

It downloads the official word lists for the JLPT levels N5 to N1,
converts custom CSV word lists to JSON, translates English meanings
into nine target languages and exports Anki flashcard decks.

Examples:
  tangocho fetch                          # Download all JLPT word lists
  tangocho convert words.csv N5.json      # Convert a CSV word list
  tangocho translate all                  # Translate every level file
  tangocho export vocabulary/N5.json      # Build an Anki deck`,
		Version: internal.Version,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.tangocho.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flags.VocabDir, "dir", "d", flags.VocabDir, "Vocabulary directory")

	fetchCmd := newFetchCommand(flags)
	translateCmd := newTranslateCommand(flags)

	rootCmd.AddCommand(
		fetchCmd,
		newConvertCommand(flags),
		newMergeCommand(flags),
		translateCmd,
		newPatchCommand(flags),
		newExportCommand(flags),
		newLanguagesCommand(),
	)

	// Bind flags to viper
	bindFlagsToViper(rootCmd, fetchCmd, translateCmd)

	return rootCmd
}

func newFetchCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download JLPT word lists for all levels",
		Long: `Download the JLPT word list CSV files for the levels N5 to N1 and
write one JSON dataset per level into the vocabulary directory.

Existing level files are overwritten. A level that fails to download
is reported and skipped; the remaining levels are still fetched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.BaseURL, "base-url", flags.BaseURL, "Base URL of the word list CSV files")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the existing vocabulary directory to archive/ first")

	return cmd
}

func newConvertCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input.csv> <output.json>",
		Short: "Convert a CSV word list to a JSON dataset",
		Long: `Convert a custom CSV word list to the JSON dataset format.

The CSV file must have a header with the columns word, reading and
meaning. Rows with an empty field are skipped.

CSV format:
  word,reading,meaning
  食べる,たべる,to eat
  学校,がっこう,school`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
}

func newMergeCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge -o <output.json> <input.json>...",
		Short: "Merge JSON datasets into one file",
		Long: `Merge two or more JSON dataset files into a single file.

Inputs are read in order and duplicate words are dropped, keeping the
first occurrence. Files that cannot be read are skipped with a warning.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file for the merged dataset")
	cmd.MarkFlagRequired("output")

	return cmd
}

func newTranslateCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <input.json> [output.json]",
		Short: "Translate English meanings into the target languages",
		Long: `Translate the English meaning of every entry in a dataset into the
target languages and attach the result as a meanings mapping.

Entries that already carry meanings are left untouched, so an
interrupted run can simply be restarted. When a single translation
fails, the English meaning is kept for that language and the run
continues.

The output file defaults to the input file. The special input "all"
translates every level file found in the vocabulary directory.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider (openai or gemini)")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model override for the translation provider")
	cmd.Flags().DurationVar(&flags.Delay, "delay", flags.Delay, "Pause between translation calls")

	return cmd
}

func newPatchCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Patch a dataset with translations from a sample file",
		Long: `Copy the meanings of every entry in a hand-checked sample file onto
the matching words of a target dataset. Words missing from the sample
are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(flags)
		},
	}

	cmd.Flags().StringVar(&flags.SamplePath, "sample", flags.SamplePath, "Sample file with reviewed translations")
	cmd.Flags().StringVar(&flags.TargetPath, "target", flags.TargetPath, "Dataset file to patch")

	return cmd
}

func newExportCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <input.json>",
		Short: "Export a dataset as an Anki deck",
		Long: `Export a JSON dataset as an Anki package (.apkg) with forward and
reverse cards, or as an Anki-importable CSV file with --csv.

Translated meanings are rendered onto the cards, one language per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.ExportPath, "output", "o", "", "Output file (default is derived from the input name)")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().BoolVar(&flags.ExportCSV, "csv", false, "Generate legacy CSV format instead of APKG")

	return cmd
}

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the target translation languages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			translate.ListLanguages(translate.DefaultLanguages)
		},
	}
}

func bindFlagsToViper(rootCmd, fetchCmd, translateCmd *cobra.Command) {
	viper.BindPFlag("vocab.directory", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("fetch.base_url", fetchCmd.Flags().Lookup("base-url"))
	viper.BindPFlag("translate.provider", translateCmd.Flags().Lookup("provider"))
	viper.BindPFlag("translate.model", translateCmd.Flags().Lookup("model"))
	viper.BindPFlag("translate.delay", translateCmd.Flags().Lookup("delay"))
}
