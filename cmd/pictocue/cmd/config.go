package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Long:  "Shows config file location, vocabulary source, journal path, and bridge address.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	vocabSrc := "embedded default set"
	if cfg.VocabPath != "" {
		vocabSrc = cfg.VocabPath
		if cfg.WatchVocab {
			vocabSrc += " (watched)"
		}
	}
	journal := cfg.JournalPath
	if journal == "" {
		journal = fmt.Sprintf("%sdisabled%s", colorYellow, colorReset)
	}

	fmt.Printf("%s⚡ pictocue config%s\n", colorBold, colorReset)
	fmt.Printf("  Config:     %s\n", flagConfig)
	fmt.Printf("  Vocabulary: %s\n", vocabSrc)
	fmt.Printf("  Journal:    %s\n", journal)
	fmt.Printf("  Bridge:     ws://%s/bridge\n", cfg.ListenAddr)
	fmt.Printf("  Log level:  %s\n", cfg.LogLevel)

	if idx, err := buildIndex(cfg); err == nil {
		fmt.Printf("  Words:      %s%d loaded%s", colorGreen, idx.Size(), colorReset)
		if idx.Skipped() > 0 {
			fmt.Printf(" %s(%d skipped)%s", colorYellow, idx.Skipped(), colorReset)
		}
		fmt.Println()
	} else {
		fmt.Printf("  Words:      %serror: %v%s\n", colorYellow, err, colorReset)
	}
	return nil
}
