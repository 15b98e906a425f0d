package vocabjson

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/maren/pictocue/internal/ports"
)

// debounceInterval absorbs the multiple write events editors emit per save.
const debounceInterval = 200 * time.Millisecond

// Watcher re-reads an external vocabulary file when it changes and hands the
// fresh entries to onChange. Dev-mode convenience only; the daemon runs fine
// without it.
type Watcher struct {
	fw       *fsnotify.Watcher
	source   *Source
	onChange func([]ports.VocabEntry)
	log      *zap.Logger

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher watches the file behind a file-backed Source.
func NewWatcher(source *Source, onChange func([]ports.VocabEntry), log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:       fw,
		source:   source,
		onChange: onChange,
		log:      log,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. Reload errors are logged and skipped — a half-saved
// file must not tear down the daemon; the previous vocabulary stays active.
func (w *Watcher) Start() error {
	if err := w.fw.Add(w.source.path); err != nil {
		return err
	}
	w.wg.Add(1)
	go w.loop()
	return nil
}

// Stop ends watching. Idempotent.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.fw.Close()
		w.wg.Wait()
	})
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	var timer *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceInterval, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			w.reload()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("vocabulary watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	entries, err := w.source.Entries()
	if err != nil {
		w.log.Warn("vocabulary reload failed, keeping previous table",
			zap.String("path", w.source.path), zap.Error(err))
		return
	}
	w.log.Info("vocabulary reloaded",
		zap.String("path", w.source.path), zap.Int("entries", len(entries)))
	w.onChange(entries)
}
