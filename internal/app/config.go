package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Config holds daemon and CLI settings, loaded from TOML.
type Config struct {
	// ListenAddr is where the host bridge listens.
	ListenAddr string `toml:"listen_addr"`
	// VocabPath points at an external vocabulary JSON file.
	// Empty means the embedded default set.
	VocabPath string `toml:"vocab_path"`
	// WatchVocab reloads VocabPath on change (dev mode; external files only).
	WatchVocab bool `toml:"watch_vocab"`
	// JournalPath is the bbolt run-history database. Empty disables journaling.
	JournalPath string `toml:"journal_path"`
	// LogLevel is a zap level name.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		ListenAddr:  "127.0.0.1:9412",
		JournalPath: "~/.pictocue/journal.db",
		LogLevel:    "info",
	}
}

// ConfigPath returns the default config file location.
func ConfigPath() string {
	return expandHome("~/.pictocue/config.toml")
}

// LoadConfig reads path, applying defaults first. A missing file is not an
// error — defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.expand()
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}
	cfg.expand()
	return cfg, nil
}

func (c *Config) expand() {
	c.VocabPath = expandHome(c.VocabPath)
	c.JournalPath = expandHome(c.JournalPath)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
