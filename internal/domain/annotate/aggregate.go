package annotate

import (
	"strings"

	"github.com/maren/pictocue/internal/domain/vocab"
)

// Aggregate annotates each item in order and merges the per-item statistics
// into one batch summary. Output order matches input order.
//
// Scanned/matched/support counts are summed across items. Unique words and
// categories are then re-derived in a second scan over the REWRITTEN items,
// so a word appearing in several items counts once for the whole batch. The
// two passes are deliberate: summing per-item unique sets would overcount
// cross-item duplicates.
func Aggregate(items []string, idx *vocab.Index) ([]string, Stats) {
	rewritten := make([]string, len(items))
	sum := Stats{VocabularySize: idx.Size()}
	for i, item := range items {
		out, st := Annotate(item, idx)
		rewritten[i] = out
		sum.ScannedWords += st.ScannedWords
		sum.MatchedWords += st.MatchedWords
		sum.SupportsAdded += st.SupportsAdded
	}

	unique := make(map[string]struct{})
	cats := make(map[string]struct{})
	for _, item := range rewritten {
		eachToken(item, func(tok string, _ int) {
			word := strings.ToLower(tok)
			if _, ok := idx.EmojiFor(word); !ok {
				return
			}
			unique[word] = struct{}{}
			if cat, known := idx.CategoryFor(word); known && cat != "" {
				cats[cat] = struct{}{}
			}
		})
	}
	sum.UniqueMatched = len(unique)
	sum.Categories = sortedSet(cats)
	return rewritten, sum
}
