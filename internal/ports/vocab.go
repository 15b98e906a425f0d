package ports

// VocabEntry is one record of the vocabulary data source:
// a word, the emoji shown after it, and the category it belongs to.
// Word matching is case-insensitive; Category may be empty.
type VocabEntry struct {
	Word     string `json:"word"`
	Emoji    string `json:"emoji"`
	Category string `json:"category,omitempty"`
}

// VocabularySource supplies the raw entries the vocabulary index is built
// from. Implementations load from the embedded default set or an external
// file; the source is read once at startup (and again on dev-mode reload).
type VocabularySource interface {
	Entries() ([]VocabEntry, error)
}
