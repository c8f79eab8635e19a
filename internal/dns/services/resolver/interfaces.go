package resolver

import "github.com/probekit/dnslab/internal/dns/domain"

// ZoneStore provides read access to the immutable fixture zones. Only exact
// matches are the store's business; the resolver owns the ancestor walk.
type ZoneStore interface {
	Lookup(name string) (domain.Zone, bool)
}

// QueryLog records every answered query. Append failures never affect the
// response; the resolver logs and moves on.
type QueryLog interface {
	Append(event domain.QueryEvent) error
}
