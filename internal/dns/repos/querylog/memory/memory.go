package memory

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/probekit/dnslab/internal/dns/domain"
	"github.com/probekit/dnslab/internal/dns/repos/querylog"
	"github.com/probekit/dnslab/internal/dns/services/resolver"
)

// memoryLog is a bounded in-memory querylog.Log. Events are keyed by a
// monotonic sequence number and never looked up individually, so LRU recency
// order stays insertion order and the oldest event is always evicted first.
type memoryLog struct {
	seq uint64
	lru *lru.Cache[uint64, domain.QueryEvent]
}

// New creates a Log retaining up to size events. If size <= 0, a no-op log
// is returned that records nothing.
func New(size int) (querylog.Log, error) {
	if size <= 0 {
		return &querylog.NoopLog{}, nil
	}
	cache, err := lru.New[uint64, domain.QueryEvent](size)
	if err != nil {
		return nil, err
	}
	return &memoryLog{lru: cache}, nil
}

// Append records one event, displacing the oldest when at capacity.
func (l *memoryLog) Append(event domain.QueryEvent) error {
	l.lru.Add(atomic.AddUint64(&l.seq, 1), event)
	return nil
}

// Recent returns up to n retained events, oldest first.
func (l *memoryLog) Recent(n int) []domain.QueryEvent {
	keys := l.lru.Keys() // oldest to newest
	if n > 0 && len(keys) > n {
		keys = keys[len(keys)-n:]
	}
	events := make([]domain.QueryEvent, 0, len(keys))
	for _, key := range keys {
		// Peek keeps reads from disturbing eviction order.
		if event, ok := l.lru.Peek(key); ok {
			events = append(events, event)
		}
	}
	return events
}

// Len returns the number of retained events.
func (l *memoryLog) Len() int { return l.lru.Len() }

// Close clears all retained events.
func (l *memoryLog) Close() error {
	l.lru.Purge()
	return nil
}

var _ querylog.Log = (*memoryLog)(nil)
var _ resolver.QueryLog = (*memoryLog)(nil)
