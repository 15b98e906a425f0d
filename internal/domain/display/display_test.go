package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maren/pictocue/internal/domain/annotate"
	"github.com/maren/pictocue/internal/domain/vocab"
	"github.com/maren/pictocue/internal/ports"
)

func TestCategoryLabel(t *testing.T) {
	cases := map[string]string{
		"animals":      "Animals",
		"wild_animals": "Wild Animals",
		"":             "Uncategorized",
		"food":         "Food",
	}
	for in, want := range cases {
		assert.Equal(t, want, CategoryLabel(in), in)
	}
}

func TestSummary(t *testing.T) {
	st := annotate.Stats{
		ScannedWords:   10,
		MatchedWords:   4,
		UniqueMatched:  3,
		SupportsAdded:  2,
		Categories:     []string{"animals", "food"},
		VocabularySize: 12,
	}
	out := Summary(st, 2)
	assert.Contains(t, out, "Annotated 2 items")
	assert.Contains(t, out, "Words scanned:   10")
	assert.Contains(t, out, "Supports added:  2")
	assert.Contains(t, out, "3 of 12 words (25%)")
	assert.Contains(t, out, "Animals, Food")
}

func TestSummary_SingleItemNoCategories(t *testing.T) {
	out := Summary(annotate.Stats{VocabularySize: 5}, 1)
	assert.Contains(t, out, "Annotated 1 item\n")
	assert.NotContains(t, out, "Categories")
}

func TestBreakdown(t *testing.T) {
	idx := vocab.NewIndex([]ports.VocabEntry{
		{Word: "dog", Emoji: "🐶", Category: "animals"},
		{Word: "apple", Emoji: "🍎", Category: "food"},
	})
	out := Breakdown(idx)
	assert.Contains(t, out, "Vocabulary: 2 words")
	assert.Contains(t, out, "Animals (1)")
	assert.Contains(t, out, "Food (1)")
	assert.Contains(t, out, "dog")
	assert.Contains(t, out, "🍎")
}
