// Package bolt persists query events in a Bolt database so a fixture's
// traffic record survives restarts.
package bolt

import (
	"encoding/binary"
	"encoding/json"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/probekit/dnslab/internal/dns/domain"
	"github.com/probekit/dnslab/internal/dns/repos/querylog"
	"github.com/probekit/dnslab/internal/dns/services/resolver"
)

// bucketEvents holds one entry per served query, keyed by the bucket's
// big-endian sequence number so key order matches arrival order.
var bucketEvents = []byte("events")

// storedEvent is the persisted JSON shape. domain.QueryEvent stays free of
// serialization tags.
type storedEvent struct {
	Time    time.Time `json:"time"`
	Client  string    `json:"client"`
	Name    string    `json:"name"`
	Type    uint16    `json:"type"`
	RCode   uint8     `json:"rcode"`
	Answers int       `json:"answers"`
}

// Store is a Bolt-backed querylog.Log.
type Store struct {
	db *bbolt.DB
}

// New opens (or creates) the database at path and ensures the events bucket
// exists.
func New(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEvents)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Append persists one event under the next sequence key.
func (s *Store) Append(event domain.QueryEvent) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketEvents)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		value, err := json.Marshal(storedEvent{
			Time:    event.Time,
			Client:  event.Client,
			Name:    event.Name,
			Type:    uint16(event.Type),
			RCode:   uint8(event.RCode),
			Answers: event.Answers,
		})
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, value)
	})
}

// Recent returns up to n events, oldest first. Entries that fail to decode
// are skipped.
func (s *Store) Recent(n int) []domain.QueryEvent {
	var events []domain.QueryEvent
	_ = s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketEvents).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if n > 0 && len(events) == n {
				break
			}
			var se storedEvent
			if err := json.Unmarshal(v, &se); err != nil {
				continue
			}
			events = append(events, domain.QueryEvent{
				Time:    se.Time,
				Client:  se.Client,
				Name:    se.Name,
				Type:    domain.RRType(se.Type),
				RCode:   domain.RCode(se.RCode),
				Answers: se.Answers,
			})
		}
		return nil
	})
	// Walked newest to oldest; flip to chronological.
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events
}

// Len returns the number of persisted events.
func (s *Store) Len() int {
	var n int
	_ = s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketEvents).Stats().KeyN
		return nil
	})
	return n
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

var _ querylog.Log = (*Store)(nil)
var _ resolver.QueryLog = (*Store)(nil)
