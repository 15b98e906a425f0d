package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maren/pictocue/internal/ports"
)

func testEntries() []ports.VocabEntry {
	return []ports.VocabEntry{
		{Word: "dog", Emoji: "🐶", Category: "animals"},
		{Word: "cat", Emoji: "🐱", Category: "animals"},
		{Word: "apple", Emoji: "🍎", Category: "food"},
		{Word: "sun", Emoji: "☀️", Category: "weather"},
	}
}

func TestNewIndex_Lookups(t *testing.T) {
	idx := NewIndex(testEntries())

	emoji, ok := idx.EmojiFor("dog")
	require.True(t, ok)
	assert.Equal(t, "🐶", emoji)

	cat, ok := idx.CategoryFor("apple")
	require.True(t, ok)
	assert.Equal(t, "food", cat)

	_, ok = idx.EmojiFor("zebra")
	assert.False(t, ok)
}

func TestNewIndex_CaseInsensitiveLookup(t *testing.T) {
	idx := NewIndex(testEntries())
	for _, w := range []string{"DOG", "Dog", "dog", "dOg"} {
		emoji, ok := idx.EmojiFor(w)
		require.True(t, ok, w)
		assert.Equal(t, "🐶", emoji)
	}
}

func TestNewIndex_NormalizesWordsAtLoad(t *testing.T) {
	idx := NewIndex([]ports.VocabEntry{
		{Word: "DOG", Emoji: "🐶", Category: "animals"},
	})
	emoji, ok := idx.EmojiFor("dog")
	require.True(t, ok)
	assert.Equal(t, "🐶", emoji)
	assert.Equal(t, 1, idx.Size())
}

func TestNewIndex_DuplicateLastWriteWins(t *testing.T) {
	idx := NewIndex([]ports.VocabEntry{
		{Word: "dog", Emoji: "🐶", Category: "animals"},
		{Word: "DOG", Emoji: "🐕", Category: "pets"},
	})

	emoji, ok := idx.EmojiFor("dog")
	require.True(t, ok)
	assert.Equal(t, "🐕", emoji)

	cat, _ := idx.CategoryFor("dog")
	assert.Equal(t, "pets", cat)

	// The overwritten duplicate must not leave a stale word in a second bucket.
	assert.Equal(t, 1, idx.Size())
	require.Len(t, idx.Categories(), 1)
	assert.Equal(t, "pets", idx.Categories()[0].Name)
}

func TestNewIndex_SkipsMalformedEntries(t *testing.T) {
	idx := NewIndex([]ports.VocabEntry{
		{Word: "", Emoji: "🐶", Category: "animals"},
		{Word: "cat", Emoji: "", Category: "animals"},
		{Word: "dog", Emoji: "🐶", Category: "animals"},
	})
	assert.Equal(t, 1, idx.Size())
	assert.Equal(t, 2, idx.Skipped())
}

func TestNewIndex_CategoriesSorted(t *testing.T) {
	idx := NewIndex(testEntries())
	groups := idx.Categories()
	require.Len(t, groups, 3)
	assert.Equal(t, "animals", groups[0].Name)
	assert.Equal(t, "food", groups[1].Name)
	assert.Equal(t, "weather", groups[2].Name)

	// Entries within a group sort by word.
	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "cat", groups[0].Entries[0].Word)
	assert.Equal(t, "dog", groups[0].Entries[1].Word)
}

func TestNewIndex_SizeEqualsSumOfBuckets(t *testing.T) {
	idx := NewIndex(testEntries())
	total := 0
	for _, g := range idx.Categories() {
		total += len(g.Entries)
	}
	assert.Equal(t, idx.Size(), total)
}

func TestNewIndex_EmptyCategoryIsABucket(t *testing.T) {
	idx := NewIndex([]ports.VocabEntry{
		{Word: "thing", Emoji: "❔"},
		{Word: "dog", Emoji: "🐶", Category: "animals"},
	})
	groups := idx.Categories()
	require.Len(t, groups, 2)
	assert.Equal(t, "", groups[0].Name) // empty sorts first
	assert.Equal(t, 2, idx.Size())

	cat, known := idx.CategoryFor("thing")
	assert.True(t, known)
	assert.Equal(t, "", cat)
}

func TestWords_Sorted(t *testing.T) {
	idx := NewIndex(testEntries())
	assert.Equal(t, []string{"apple", "cat", "dog", "sun"}, idx.Words())
}

func TestNewIndex_Empty(t *testing.T) {
	idx := NewIndex(nil)
	assert.Equal(t, 0, idx.Size())
	assert.Empty(t, idx.Categories())
}
