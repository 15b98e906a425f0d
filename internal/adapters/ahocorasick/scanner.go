// Package ahocorasick provides multi-pattern occurrence scanning over the
// vocabulary using an Aho-Corasick automaton. It powers the dry-run coverage
// view: where vocabulary words occur, without rewriting anything.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Occurrence is one whole-word vocabulary hit with byte offsets into the
// scanned text (Start inclusive, End exclusive).
type Occurrence struct {
	Word  string
	Start int
	End   int
}

// Scanner wraps an Aho-Corasick automaton built from the vocabulary words.
// Matching is ASCII case-insensitive and restricted to whole words: a hit
// bordered by a word character on either side is discarded, so "cat" never
// fires inside "cathedral".
type Scanner struct {
	automaton aho.AhoCorasick
	words     []string
}

// NewScanner builds a scanner. Words must be lowercase (vocab.Index.Words()
// already is).
func NewScanner(words []string) *Scanner {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	w := make([]string, len(words))
	copy(w, words)
	return &Scanner{
		automaton: builder.Build(w),
		words:     w,
	}
}

// Scan returns every whole-word occurrence of a vocabulary word in text,
// in offset order.
func (s *Scanner) Scan(text string) []Occurrence {
	if len(s.words) == 0 {
		return nil
	}
	folded := asciiLower(text)
	iter := s.automaton.IterOverlappingByte([]byte(folded))
	var out []Occurrence
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		start, end := m.Start(), m.End()
		if start > 0 && isWordByte(text[start-1]) {
			continue
		}
		if end < len(text) && isWordByte(text[end]) {
			continue
		}
		out = append(out, Occurrence{
			Word:  s.words[m.Pattern()],
			Start: start,
			End:   end,
		})
	}
	return out
}

// WordCount returns the number of words in the automaton.
func (s *Scanner) WordCount() int {
	return len(s.words)
}

// asciiLower folds A–Z to a–z without touching any other byte, so offsets
// into the folded text are valid in the original.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z')
}
