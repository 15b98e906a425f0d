package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maren/pictocue/internal/adapters/bboltjournal"
	"github.com/maren/pictocue/internal/adapters/hostws"
	"github.com/maren/pictocue/internal/adapters/vocabjson"
	"github.com/maren/pictocue/internal/app"
	"github.com/maren/pictocue/internal/domain/vocab"
	"github.com/maren/pictocue/internal/logging"
	"github.com/maren/pictocue/internal/ports"
)

// runTimeout bounds one read → annotate → save cycle against a stalled host.
const runTimeout = 30 * time.Second

var daemonAddr string

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the host bridge daemon",
	Long: "Serves the local websocket bridge the design-host plugin connects to.\n" +
		"Each host-initiated run trigger executes one read → annotate → save cycle.",
	RunE: runDaemon,
}

func init() {
	daemonCmd.Flags().StringVar(&daemonAddr, "addr", "", "listen address (overrides config)")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	idx, err := buildIndex(cfg)
	if err != nil {
		return err
	}
	log.Info("vocabulary loaded",
		zap.Int("words", idx.Size()), zap.Int("skipped", idx.Skipped()))

	var journal ports.Journal
	if cfg.JournalPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.JournalPath), 0755); err != nil {
			return err
		}
		store, err := bboltjournal.NewStore(cfg.JournalPath)
		if err != nil {
			return err
		}
		defer store.Close()
		journal = store
	}

	a := app.New(idx, journal, log)

	if cfg.WatchVocab && cfg.VocabPath != "" {
		watcher, err := vocabjson.NewWatcher(
			vocabjson.NewFileSource(cfg.VocabPath),
			func(entries []ports.VocabEntry) { a.SetIndex(vocab.NewIndex(entries)) },
			log,
		)
		if err != nil {
			return err
		}
		if err := watcher.Start(); err != nil {
			return err
		}
		defer watcher.Stop()
		log.Info("watching vocabulary file", zap.String("path", cfg.VocabPath))
	}

	addr := cfg.ListenAddr
	if daemonAddr != "" {
		addr = daemonAddr
	}
	bridge := hostws.NewBridge(addr, log)
	if err := bridge.Start(); err != nil {
		return err
	}
	defer bridge.Stop(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-sigCh:
			log.Info("shutting down")
			return nil
		case session := <-bridge.Sessions():
			go serveSession(a, session, log)
		}
	}
}

// serveSession runs annotation cycles for one host session until it ends.
func serveSession(a *app.App, s *hostws.Session, log *zap.Logger) {
	for {
		select {
		case <-s.Done():
			return
		case <-s.Runs():
			ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
			res, err := a.RunOnce(ctx, s)
			cancel()

			ev := hostws.SummaryEvent{OK: err == nil}
			if err != nil {
				log.Error("annotation run failed", zap.Error(err))
				ev.Error = err.Error()
			} else {
				ev.Items = res.Items
				stats := res.Stats
				ev.Stats = &stats
			}
			if err := s.NotifySummary(ev); err != nil {
				log.Warn("summary notify failed", zap.Error(err))
			}
		}
	}
}
