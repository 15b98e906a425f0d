// Package vocab builds the read-only vocabulary index: word → emoji,
// word → category, and a category-grouped view for display.
//
// The index is constructed once at startup and never mutated afterwards, so
// it is safe to share across goroutines without locking.
package vocab

import (
	"sort"
	"strings"

	"github.com/maren/pictocue/internal/ports"
)

// WordEmoji pairs a vocabulary word with its emoji for display.
type WordEmoji struct {
	Word  string
	Emoji string
}

// CategoryGroup is one category bucket. Groups are sorted by category name
// and entries within a group by word, so display order is deterministic.
type CategoryGroup struct {
	Name    string
	Entries []WordEmoji
}

// Index is the derived lookup structure over the vocabulary entries.
// Every word lives in exactly one category bucket; Size() equals the sum of
// the bucket sizes.
type Index struct {
	emojiOf    map[string]string
	categoryOf map[string]string
	groups     []CategoryGroup
	skipped    int
}

// NewIndex builds an Index from raw entries.
//
// Words are normalized to lowercase at load time. Entries missing a word or
// an emoji are skipped rather than aborting the load — one bad record must
// not disable the whole vocabulary. Duplicate normalized words: the later
// entry wins in every derived structure.
func NewIndex(entries []ports.VocabEntry) *Index {
	idx := &Index{
		emojiOf:    make(map[string]string, len(entries)),
		categoryOf: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		word := strings.ToLower(e.Word)
		if word == "" || e.Emoji == "" {
			idx.skipped++
			continue
		}
		idx.emojiOf[word] = e.Emoji
		idx.categoryOf[word] = e.Category
	}

	// Group from the final maps, not the raw entries, so an overwritten
	// duplicate cannot leave a stale word in a second bucket.
	byCat := make(map[string][]WordEmoji)
	for word, emoji := range idx.emojiOf {
		cat := idx.categoryOf[word]
		byCat[cat] = append(byCat[cat], WordEmoji{Word: word, Emoji: emoji})
	}
	names := make([]string, 0, len(byCat))
	for name := range byCat {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		group := byCat[name]
		sort.Slice(group, func(i, j int) bool { return group[i].Word < group[j].Word })
		idx.groups = append(idx.groups, CategoryGroup{Name: name, Entries: group})
	}
	return idx
}

// EmojiFor returns the emoji for a word. Matching is case-insensitive.
func (idx *Index) EmojiFor(word string) (string, bool) {
	emoji, ok := idx.emojiOf[strings.ToLower(word)]
	return emoji, ok
}

// CategoryFor returns the category for a word. The returned bool reports
// whether the word is in the vocabulary at all; the category itself may be
// empty for uncategorized entries.
func (idx *Index) CategoryFor(word string) (string, bool) {
	cat, ok := idx.categoryOf[strings.ToLower(word)]
	return cat, ok
}

// Size returns the number of distinct words in the vocabulary.
func (idx *Index) Size() int {
	return len(idx.emojiOf)
}

// Skipped returns how many malformed entries were rejected at load time.
func (idx *Index) Skipped() int {
	return idx.skipped
}

// Categories returns the category buckets in display order.
func (idx *Index) Categories() []CategoryGroup {
	return idx.groups
}

// Words returns every vocabulary word, sorted. Used to seed the occurrence
// scanner's automaton.
func (idx *Index) Words() []string {
	words := make([]string, 0, len(idx.emojiOf))
	for word := range idx.emojiOf {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
