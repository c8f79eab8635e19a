package zonestore

import (
	"fmt"
	"slices"
	"strings"

	"github.com/probekit/dnslab/internal/dns/common/rrdata"
	"github.com/probekit/dnslab/internal/dns/common/utils"
	"github.com/probekit/dnslab/internal/dns/domain"
	"github.com/probekit/dnslab/internal/dns/services/resolver"
)

// RawZones is the construction-time shape of the fixture data: zone name to
// record type tag ("A", "TXT", ...) to presentation-form values.
type RawZones map[string]map[string][]string

// Store holds the normalized fixture zones for the lifetime of the server.
// It is immutable after New returns, so lookups need no locking even while
// the transport worker reads concurrently with test inspection.
type Store struct {
	zones map[string]domain.Zone
}

// New builds a Store from raw fixture data. Zone names are canonicalized to
// lowercase fully-qualified form. Unknown record type tags and empty names
// fail construction; record values are deliberately not validated here, bad
// values surface when the resolver tries to encode them.
func New(raw RawZones) (*Store, error) {
	zones := make(map[string]domain.Zone, len(raw))
	for name, tagged := range raw {
		records := make(map[domain.RRType][]string, len(tagged))
		for tag, values := range tagged {
			rrtype := domain.RRTypeFromString(strings.ToUpper(strings.TrimSpace(tag)))
			if !rrdata.CanEncode(rrtype) {
				return nil, fmt.Errorf("zone %q: unsupported record type %q", name, tag)
			}
			if _, dup := records[rrtype]; dup {
				return nil, fmt.Errorf("zone %q: duplicate records for type %q", name, tag)
			}
			records[rrtype] = values
		}
		zone, err := domain.NewZone(name, records)
		if err != nil {
			return nil, err
		}
		if _, dup := zones[zone.Name]; dup {
			return nil, fmt.Errorf("zone %q: duplicate definition after normalization", zone.Name)
		}
		zones[zone.Name] = zone
	}
	return &Store{zones: zones}, nil
}

// Lookup returns the zone exactly matching the given name, after
// canonicalization. Ancestor walking is the resolver's job, not the store's.
func (s *Store) Lookup(name string) (domain.Zone, bool) {
	zone, ok := s.zones[utils.CanonicalDNSName(name)]
	return zone, ok
}

// Zones returns all zone names in sorted order.
func (s *Store) Zones() []string {
	names := make([]string, 0, len(s.zones))
	for name := range s.zones {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of zones in the store.
func (s *Store) Len() int {
	return len(s.zones)
}

// RecordCount returns the total number of record values across all zones.
func (s *Store) RecordCount() int {
	count := 0
	for _, zone := range s.zones {
		count += zone.RecordCount()
	}
	return count
}

// Ensure Store implements resolver.ZoneStore at compile time
var _ resolver.ZoneStore = (*Store)(nil)
