// Package display formats vocabulary categories and run summaries for
// human consumption. It is the only consumer-facing view over the engine's
// statistics; nothing here feeds back into matching.
package display

import (
	"fmt"
	"strings"

	"github.com/maren/pictocue/internal/domain/annotate"
	"github.com/maren/pictocue/internal/domain/vocab"
)

// CategoryLabel formats a raw category name for display:
// "wild_animals" → "Wild Animals". The empty category renders as
// "Uncategorized".
func CategoryLabel(raw string) string {
	if raw == "" {
		return "Uncategorized"
	}
	parts := strings.Split(raw, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// Summary renders a multi-line run summary.
func Summary(st annotate.Stats, items int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Annotated %d item%s\n", items, plural(items))
	fmt.Fprintf(&b, "  Words scanned:   %d\n", st.ScannedWords)
	fmt.Fprintf(&b, "  Words matched:   %d\n", st.MatchedWords)
	fmt.Fprintf(&b, "  Supports added:  %d\n", st.SupportsAdded)
	fmt.Fprintf(&b, "  Vocabulary used: %d of %d words", st.UniqueMatched, st.VocabularySize)
	if st.VocabularySize > 0 {
		fmt.Fprintf(&b, " (%.0f%%)", 100*float64(st.UniqueMatched)/float64(st.VocabularySize))
	}
	b.WriteByte('\n')
	if len(st.Categories) > 0 {
		labels := make([]string, len(st.Categories))
		for i, c := range st.Categories {
			labels[i] = CategoryLabel(c)
		}
		fmt.Fprintf(&b, "  Categories:      %s\n", strings.Join(labels, ", "))
	}
	return b.String()
}

// Breakdown renders the whole vocabulary grouped by category.
func Breakdown(idx *vocab.Index) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vocabulary: %d words\n", idx.Size())
	for _, group := range idx.Categories() {
		fmt.Fprintf(&b, "\n%s (%d)\n", CategoryLabel(group.Name), len(group.Entries))
		for _, e := range group.Entries {
			fmt.Fprintf(&b, "  %-14s %s\n", e.Word, e.Emoji)
		}
	}
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
