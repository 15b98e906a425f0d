package annotate

import "sort"

// Stats summarizes one annotation pass, or an aggregated batch.
//
// Invariants: SupportsAdded ≤ MatchedWords ≤ ScannedWords;
// UniqueMatched ≤ MatchedWords and UniqueMatched ≤ VocabularySize.
type Stats struct {
	// ScannedWords is the number of tokens examined.
	ScannedWords int `json:"scanned_words"`
	// MatchedWords counts every vocabulary hit, repeats included.
	MatchedWords int `json:"matched_words"`
	// UniqueMatched is the number of distinct lowercase words matched
	// within the measured scope (one call, or the whole batch).
	UniqueMatched int `json:"unique_matched"`
	// SupportsAdded counts insertions actually performed; a word whose
	// emoji was already in place contributes nothing here.
	SupportsAdded int `json:"supports_added"`
	// Categories is the sorted set of distinct categories touched.
	Categories []string `json:"categories,omitempty"`
	// VocabularySize is the total distinct words in the table.
	VocabularySize int `json:"vocabulary_size"`
}

// sortedSet flattens a string set into a sorted slice, nil when empty.
func sortedSet(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
