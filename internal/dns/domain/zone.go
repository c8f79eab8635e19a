package domain

import (
	"fmt"
	"slices"

	"github.com/probekit/dnslab/internal/dns/common/utils"
)

// Zone holds the record values defined for one fully-qualified name. Values
// stay in zone-file presentation form ("192.0.2.1", "10 mail.example.com.")
// and keep their definition order, which is also answer order. A Zone is
// immutable once built.
type Zone struct {
	Name    string
	records map[RRType][]string
}

// NewZone constructs a Zone from presentation-form values grouped by type.
// The name is canonicalized; empty names and invalid record types are
// rejected. Empty value slices are dropped.
func NewZone(name string, records map[RRType][]string) (Zone, error) {
	canonical := utils.CanonicalDNSName(name)
	if canonical == "" {
		return Zone{}, fmt.Errorf("zone name must not be empty")
	}
	stored := make(map[RRType][]string, len(records))
	for rrtype, values := range records {
		if !rrtype.IsValid() {
			return Zone{}, fmt.Errorf("zone %s: invalid record type %d", canonical, rrtype)
		}
		if len(values) == 0 {
			continue
		}
		stored[rrtype] = slices.Clone(values)
	}
	return Zone{Name: canonical, records: stored}, nil
}

// Records returns the values defined for the given type, in definition order.
// The returned slice is a copy; callers cannot mutate the zone through it.
func (z Zone) Records(rrtype RRType) []string {
	values, ok := z.records[rrtype]
	if !ok {
		return nil
	}
	return slices.Clone(values)
}

// HasRecords returns true if at least one value is defined for the given type.
func (z Zone) HasRecords(rrtype RRType) bool {
	return len(z.records[rrtype]) > 0
}

// Types returns the record types defined in this zone in ascending numeric
// order, so iteration over a zone is deterministic.
func (z Zone) Types() []RRType {
	types := make([]RRType, 0, len(z.records))
	for rrtype := range z.records {
		types = append(types, rrtype)
	}
	slices.Sort(types)
	return types
}

// RecordCount returns the total number of values across all types.
func (z Zone) RecordCount() int {
	n := 0
	for _, values := range z.records {
		n += len(values)
	}
	return n
}
