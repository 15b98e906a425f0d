// Package lexicon embeds the default vocabulary for compile-time inclusion.
// v1 is a single JSON document of {word, emoji, category} records.
//
// Usage:
//
//	vocabjson.NewEmbeddedSource(lexicon.FS, lexicon.DefaultFile)
package lexicon

import "embed"

//go:embed v1/*.json
var FS embed.FS

// DefaultFile is the path of the default vocabulary within FS.
const DefaultFile = "v1/vocabulary.json"
