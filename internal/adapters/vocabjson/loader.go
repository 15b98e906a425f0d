// Package vocabjson implements ports.VocabularySource over JSON data:
// the embedded default vocabulary (lexicon.FS) or an external file.
//
// File format:
//
//	{"entries": [{"word": "dog", "emoji": "🐶", "category": "animals"}, ...]}
package vocabjson

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/maren/pictocue/internal/ports"
)

// vocabFile is the on-disk JSON shape.
type vocabFile struct {
	Entries []ports.VocabEntry `json:"entries"`
}

// Source reads vocabulary entries from one JSON document.
type Source struct {
	path string // external file, when set
	fsys fs.FS  // embedded FS otherwise
	name string
}

// NewFileSource reads entries from an external JSON file.
func NewFileSource(path string) *Source {
	return &Source{path: path}
}

// NewEmbeddedSource reads entries from an embedded filesystem, typically
// lexicon.FS with lexicon.DefaultFile.
func NewEmbeddedSource(fsys fs.FS, name string) *Source {
	return &Source{fsys: fsys, name: name}
}

// Entries loads and decodes the vocabulary document.
func (s *Source) Entries() ([]ports.VocabEntry, error) {
	var raw []byte
	var err error
	switch {
	case s.path != "":
		raw, err = os.ReadFile(s.path)
		if err != nil {
			return nil, errors.Wrapf(err, "read vocabulary file %s", s.path)
		}
	default:
		raw, err = fs.ReadFile(s.fsys, s.name)
		if err != nil {
			return nil, errors.Wrapf(err, "read embedded vocabulary %s", s.name)
		}
	}

	var doc vocabFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode vocabulary JSON")
	}
	return doc.Entries, nil
}
