package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maren/pictocue/internal/adapters/ahocorasick"
	"github.com/maren/pictocue/internal/domain/display"
)

var scanCmd = &cobra.Command{
	Use:   "scan [text ...]",
	Short: "Preview vocabulary coverage without rewriting",
	Long:  "Scans text for whole-word vocabulary occurrences and prints a per-word tally. Nothing is rewritten.",
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	idx, err := buildIndex(cfg)
	if err != nil {
		return err
	}

	text := strings.Join(args, "\n")
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = string(data)
	}

	scanner := ahocorasick.NewScanner(idx.Words())
	occs := scanner.Scan(text)
	if len(occs) == 0 {
		fmt.Printf("%sno vocabulary words found%s\n", colorGray, colorReset)
		return nil
	}

	counts := make(map[string]int)
	for _, o := range occs {
		counts[o.Word]++
	}
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Strings(words)

	fmt.Printf("%s⚡ %d occurrences, %d distinct words%s\n", colorBold, len(occs), len(words), colorReset)
	for _, w := range words {
		emoji, _ := idx.EmojiFor(w)
		cat, _ := idx.CategoryFor(w)
		fmt.Printf("  %-14s %s ×%-3d %s%s%s\n",
			w, emoji, counts[w], colorGray, display.CategoryLabel(cat), colorReset)
	}
	return nil
}
