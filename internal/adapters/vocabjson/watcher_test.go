package vocabjson

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maren/pictocue/internal/ports"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	write := func(doc string) {
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	}
	write(`{"entries": [{"word": "dog", "emoji": "🐶", "category": "animals"}]}`)

	reloads := make(chan []ports.VocabEntry, 4)
	w, err := NewWatcher(NewFileSource(path), func(entries []ports.VocabEntry) {
		reloads <- entries
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	write(`{"entries": [
		{"word": "dog", "emoji": "🐶", "category": "animals"},
		{"word": "fox", "emoji": "🦊", "category": "animals"}
	]}`)

	select {
	case entries := <-reloads:
		require.Len(t, entries, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never reloaded")
	}
}

func TestWatcher_KeepsPreviousTableOnBadWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"entries": []}`), 0644))

	reloads := make(chan []ports.VocabEntry, 4)
	w, err := NewWatcher(NewFileSource(path), func(entries []ports.VocabEntry) {
		reloads <- entries
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	select {
	case <-reloads:
		t.Fatal("onChange fired for an unparseable file")
	case <-time.After(1 * time.Second):
		// reload was skipped, previous vocabulary stays active
	}
}
