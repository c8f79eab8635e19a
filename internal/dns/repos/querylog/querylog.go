// Package querylog defines the storage contract for the fixture's query log
// and a no-op implementation for when logging is disabled.
//
// The query log is the server-side record of every answered datagram. Test
// harnesses read it back to verify that a tool under test actually reached
// the fixture, so implementations must preserve arrival order.
package querylog

import "github.com/probekit/dnslab/internal/dns/domain"

// Log records served queries and exposes them for later inspection.
// Recent returns up to n events in chronological order; n <= 0 returns all
// retained events. Implementations are safe for concurrent use.
type Log interface {
	Append(event domain.QueryEvent) error
	Recent(n int) []domain.QueryEvent
	Len() int
	Close() error
}
