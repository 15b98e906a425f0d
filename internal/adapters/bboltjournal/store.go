// Package bboltjournal implements the ports.Journal interface using bbolt
// (embedded B+ tree). Records live in a single "runs" bucket keyed by
// start-time so a reverse cursor walk yields newest-first. Writes are
// transactional — a crash mid-append cannot corrupt committed records.
package bboltjournal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/maren/pictocue/internal/ports"
)

var bucketRuns = []byte("runs")

// Store implements ports.Journal backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "bbolt open")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// runKey orders records chronologically; the ID suffix keeps keys unique
// even for same-nanosecond runs.
func runKey(rec ports.RunRecord) []byte {
	return fmt.Appendf(nil, "%s|%s", rec.StartedAt.UTC().Format(time.RFC3339Nano), rec.ID)
}

// Append persists one run record.
func (s *Store) Append(rec ports.RunRecord) error {
	val, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshal run record")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketRuns)
		if err != nil {
			return err
		}
		return b.Put(runKey(rec), val)
	})
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(limit int) ([]ports.RunRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	var recs []ports.RunRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRuns)
		if b == nil {
			return nil // no runs yet
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(recs) < limit; k, v = c.Prev() {
			var rec ports.RunRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return errors.Wrapf(err, "decode run record %s", k)
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}
