// Package transport provides network transports for the DNS fixture server.
// It converts between wire format and domain objects, so the service layer
// works purely with domain types.
package transport

import (
	"context"
	"net"

	"github.com/probekit/dnslab/internal/dns/domain"
)

// State describes where a transport is in its lifecycle. Transitions always
// run Stopped -> Starting -> Running -> Stopping -> Stopped.
type State uint8

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
)

var stateNames = map[State]string{
	StateStopped:  "stopped",
	StateStarting: "starting",
	StateRunning:  "running",
	StateStopping: "stopping",
}

// String returns the lowercase name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ServerTransport defines the interface for DNS server transport
// implementations. Start and Stop are safe to call in any order and any
// number of times; redundant calls are no-ops.
type ServerTransport interface {
	// Start binds the socket and begins serving queries via the provided
	// handler. Starting a transport that is not stopped does nothing.
	Start(ctx context.Context, handler QueryHandler) error

	// Stop shuts the transport down. It waits a bounded time for the serve
	// loop to drain, then closes the socket regardless.
	Stop() error

	// Address returns the bound listen address once started, or the
	// configured address before that.
	Address() string
}

// QueryHandler is how the service layer receives decoded queries. The
// transport owns every network and wire format concern; the handler sees
// only domain objects and always produces a response.
type QueryHandler interface {
	HandleQuery(ctx context.Context, query domain.Question, clientAddr net.Addr) domain.DNSResponse
}
