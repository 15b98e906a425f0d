// Package annotate implements the word-matching engine that appends emoji
// supports after vocabulary words, and the batch aggregation across multiple
// text items. Both are pure: no I/O, no shared mutable state.
package annotate

import (
	"strings"

	"github.com/maren/pictocue/internal/domain/vocab"
)

// isWordByte reports whether b belongs to the \w class: ASCII letters,
// digits, underscore. Tokenization is an explicit byte scan so token
// boundaries are identical everywhere; multi-byte runes (emoji included)
// are never word characters and pass through untouched.
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z')
}

// eachToken calls fn for every maximal word-character run in text.
// end is the byte offset just past the token.
func eachToken(text string, fn func(tok string, end int)) {
	for i := 0; i < len(text); {
		if !isWordByte(text[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(text) && isWordByte(text[j]) {
			j++
		}
		fn(text[i:j], j)
		i = j
	}
}

// Annotate rewrites text, appending " <emoji>" after every word found in the
// vocabulary. Matching is case-insensitive; the original casing is kept in
// the output. A word already followed by exactly one space and its emoji is
// left alone, so running Annotate over its own output is a no-op
// (SupportsAdded == 0 on the second pass). Anything else after the word —
// extra whitespace, a different emoji — does not suppress insertion.
func Annotate(text string, idx *vocab.Index) (string, Stats) {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	stats := Stats{VocabularySize: idx.Size()}
	unique := make(map[string]struct{})
	cats := make(map[string]struct{})

	last := 0
	eachToken(text, func(tok string, end int) {
		start := end - len(tok)
		b.WriteString(text[last:start]) // separators pass through unchanged
		last = end
		b.WriteString(tok)

		stats.ScannedWords++
		word := strings.ToLower(tok)
		emoji, ok := idx.EmojiFor(word)
		if !ok {
			return
		}
		stats.MatchedWords++
		unique[word] = struct{}{}
		if cat, known := idx.CategoryFor(word); known && cat != "" {
			cats[cat] = struct{}{}
		}

		// Exactly one space followed by the matching emoji means this
		// occurrence was already annotated.
		if strings.HasPrefix(text[end:], " "+emoji) {
			return
		}
		b.WriteByte(' ')
		b.WriteString(emoji)
		stats.SupportsAdded++
	})
	b.WriteString(text[last:])

	stats.UniqueMatched = len(unique)
	stats.Categories = sortedSet(cats)
	return b.String(), stats
}
