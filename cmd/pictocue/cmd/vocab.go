package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maren/pictocue/internal/domain/display"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "List the vocabulary by category",
	RunE:  runVocab,
}

func runVocab(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	idx, err := buildIndex(cfg)
	if err != nil {
		return err
	}
	fmt.Print(display.Breakdown(idx))
	if skipped := idx.Skipped(); skipped > 0 {
		fmt.Printf("\n%s%d malformed entries skipped at load%s\n", colorYellow, skipped, colorReset)
	}
	return nil
}
