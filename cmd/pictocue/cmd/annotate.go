package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maren/pictocue/internal/domain/annotate"
	"github.com/maren/pictocue/internal/domain/display"
)

var annotateQuiet bool

var annotateCmd = &cobra.Command{
	Use:   "annotate [text ...]",
	Short: "Annotate text with emoji supports",
	Long: "Each argument is one text item; with no arguments, stdin is read as a single item.\n" +
		"Prints the rewritten items, then a summary on stderr. Already-annotated text is left alone.",
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().BoolVarP(&annotateQuiet, "quiet", "q", false, "suppress the summary")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	idx, err := buildIndex(cfg)
	if err != nil {
		return err
	}

	items := args
	if len(items) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		items = []string{string(data)}
	}

	rewritten, summary := annotate.Aggregate(items, idx)
	for _, item := range rewritten {
		fmt.Print(item)
		if !strings.HasSuffix(item, "\n") {
			fmt.Println()
		}
	}
	if !annotateQuiet {
		fmt.Fprint(os.Stderr, display.Summary(summary, len(items)))
	}
	return nil
}
