package ports

import "time"

// RunRecord is the persisted summary of one completed annotation cycle.
// It holds statistics only — never document text.
type RunRecord struct {
	ID             string    `json:"id"`
	StartedAt      time.Time `json:"started_at"`
	Items          int       `json:"items"`
	ScannedWords   int       `json:"scanned_words"`
	MatchedWords   int       `json:"matched_words"`
	UniqueMatched  int       `json:"unique_matched"`
	SupportsAdded  int       `json:"supports_added"`
	Categories     []string  `json:"categories,omitempty"`
	VocabularySize int       `json:"vocabulary_size"`
}

// Journal persists run records.
// Append must be durable before returning; Recent returns records newest
// first, at most limit of them.
type Journal interface {
	Append(rec RunRecord) error
	Recent(limit int) ([]RunRecord, error)
}
