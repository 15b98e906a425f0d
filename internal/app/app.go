// Package app wires adapters and domain logic together and owns the
// read → annotate → save lifecycle.
package app

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maren/pictocue/internal/domain/annotate"
	"github.com/maren/pictocue/internal/domain/vocab"
	"github.com/maren/pictocue/internal/ports"
)

// ErrBusy means an annotation cycle is already in flight. Cycles on the same
// content scope must not interleave — a second concurrent save could clobber
// the first one's writes.
var ErrBusy = errors.New("annotation run already in progress")

// Result is the outcome of one annotation cycle.
type Result struct {
	// NoSelection is set when the host had nothing selected; the cycle was
	// a no-op and nothing was written.
	NoSelection bool
	Items       int
	Stats       annotate.Stats
}

// App is the top-level container: the current vocabulary index, the optional
// run journal, and the single-flight gate.
type App struct {
	log     *zap.Logger
	journal ports.Journal // nil disables journaling
	index   atomic.Pointer[vocab.Index]
	running atomic.Bool
}

// New wires an App. journal may be nil.
func New(idx *vocab.Index, journal ports.Journal, log *zap.Logger) *App {
	a := &App{log: log, journal: journal}
	a.index.Store(idx)
	return a
}

// Index returns the current vocabulary index.
func (a *App) Index() *vocab.Index {
	return a.index.Load()
}

// SetIndex swaps in a rebuilt vocabulary index. A cycle in flight keeps the
// index it started with; the swap takes effect on the next run.
func (a *App) SetIndex(idx *vocab.Index) {
	a.index.Store(idx)
	a.log.Info("vocabulary index swapped",
		zap.Int("words", idx.Size()), zap.Int("skipped", idx.Skipped()))
}

// RunOnce executes one read → annotate → save cycle against the host.
//
// Failure semantics: a read failure mutates nothing; a save failure discards
// the in-memory rewrite and leaves the host document in its pre-call state
// (the host applies saves atomically). The journal is written only after a
// successful save, and journal errors are logged, never fatal.
func (a *App) RunOnce(ctx context.Context, content ports.ContentSource) (*Result, error) {
	if !a.running.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer a.running.Store(false)

	idx := a.index.Load()
	started := time.Now()

	n, err := content.SelectionCount(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "count selection")
	}
	if n == 0 {
		a.log.Info("nothing selected, skipping run")
		return &Result{NoSelection: true, Stats: annotate.Stats{VocabularySize: idx.Size()}}, nil
	}

	items, err := content.Read(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read content")
	}
	if len(items) == 0 {
		a.log.Info("selection emptied before read, skipping run")
		return &Result{NoSelection: true, Stats: annotate.Stats{VocabularySize: idx.Size()}}, nil
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	rewritten, summary := annotate.Aggregate(texts, idx)
	for i := range items {
		items[i].Text = rewritten[i]
	}

	if err := content.Save(ctx, items); err != nil {
		return nil, errors.Wrap(err, "save content")
	}

	a.appendJournal(started, len(items), summary)
	a.log.Info("annotation run complete",
		zap.Int("items", len(items)),
		zap.Int("scanned", summary.ScannedWords),
		zap.Int("matched", summary.MatchedWords),
		zap.Int("supports_added", summary.SupportsAdded),
		zap.Int("unique", summary.UniqueMatched),
		zap.Duration("elapsed", time.Since(started)))
	return &Result{Items: len(items), Stats: summary}, nil
}

func (a *App) appendJournal(started time.Time, items int, st annotate.Stats) {
	if a.journal == nil {
		return
	}
	rec := ports.RunRecord{
		ID:             uuid.NewString(),
		StartedAt:      started,
		Items:          items,
		ScannedWords:   st.ScannedWords,
		MatchedWords:   st.MatchedWords,
		UniqueMatched:  st.UniqueMatched,
		SupportsAdded:  st.SupportsAdded,
		Categories:     st.Categories,
		VocabularySize: st.VocabularySize,
	}
	if err := a.journal.Append(rec); err != nil {
		a.log.Warn("journal append failed", zap.Error(err))
	}
}
