package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maren/pictocue/internal/adapters/vocabjson"
	"github.com/maren/pictocue/internal/app"
	"github.com/maren/pictocue/internal/domain/vocab"
	"github.com/maren/pictocue/lexicon"
)

var (
	flagConfig string
	flagVocab  string
)

var rootCmd = &cobra.Command{
	Use:   "pictocue",
	Short: "pictocue — emoji supports for design-host text",
	Long:  "Appends pictographic emoji cues after vocabulary words in selected text, via a local bridge to the design host.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", app.ConfigPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&flagVocab, "vocab", "", "vocabulary JSON file (default: embedded set)")

	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies the --vocab override.
func loadConfig() (app.Config, error) {
	cfg, err := app.LoadConfig(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagVocab != "" {
		cfg.VocabPath = flagVocab
	}
	return cfg, nil
}

// vocabSource picks the external file or the embedded default set.
func vocabSource(cfg app.Config) *vocabjson.Source {
	if cfg.VocabPath != "" {
		return vocabjson.NewFileSource(cfg.VocabPath)
	}
	return vocabjson.NewEmbeddedSource(lexicon.FS, lexicon.DefaultFile)
}

// buildIndex loads the vocabulary entries and builds the lookup index.
func buildIndex(cfg app.Config) (*vocab.Index, error) {
	entries, err := vocabSource(cfg).Entries()
	if err != nil {
		return nil, err
	}
	return vocab.NewIndex(entries), nil
}
