package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maren/pictocue/internal/adapters/bboltjournal"
	"github.com/maren/pictocue/internal/domain/display"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent annotation runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.JournalPath == "" {
		fmt.Println("journaling is disabled (journal_path is empty)")
		return nil
	}

	store, err := bboltjournal.NewStore(cfg.JournalPath)
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Printf("%sno runs recorded yet%s\n", colorGray, colorReset)
		return nil
	}

	for _, r := range recs {
		fmt.Printf("%s%s%s  %d item(s)  %d scanned, %d matched, %d added  %d/%d words\n",
			colorBold, r.StartedAt.Local().Format("2006-01-02 15:04:05"), colorReset,
			r.Items, r.ScannedWords, r.MatchedWords, r.SupportsAdded,
			r.UniqueMatched, r.VocabularySize)
		if len(r.Categories) > 0 {
			labels := make([]string, len(r.Categories))
			for i, c := range r.Categories {
				labels[i] = display.CategoryLabel(c)
			}
			fmt.Printf("  %s%s%s\n", colorGray, strings.Join(labels, ", "), colorReset)
		}
	}
	return nil
}
