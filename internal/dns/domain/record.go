package domain

import (
	"fmt"

	"github.com/probekit/dnslab/internal/dns/common/utils"
)

// ResourceRecord represents a single DNS answer record. Fixture records are
// always authoritative, so there is no expiry bookkeeping; TTL is whatever the
// resolver stamped on the answer.
type ResourceRecord struct {
	Name  string
	Type  RRType
	Class RRClass
	TTL   uint32
	Data  []byte // wire-encoded RDATA
	Text  string // zone-file presentation of the value
}

// NewResourceRecord constructs a ResourceRecord and validates its fields.
// The name is canonicalized to lowercase fully-qualified form.
func NewResourceRecord(name string, rrtype RRType, class RRClass, ttl uint32, data []byte, text string) (ResourceRecord, error) {
	rr := ResourceRecord{
		Name:  utils.CanonicalDNSName(name),
		Type:  rrtype,
		Class: class,
		TTL:   ttl,
		Data:  data,
		Text:  text,
	}
	if err := rr.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	return rr, nil
}

// Validate checks whether the ResourceRecord fields are valid.
func (rr ResourceRecord) Validate() error {
	if rr.Name == "" {
		return fmt.Errorf("record name must not be empty")
	}
	if !rr.Type.IsValid() {
		return fmt.Errorf("invalid RRType: %d", rr.Type)
	}
	if !rr.Class.IsValid() {
		return fmt.Errorf("invalid RRClass: %d", rr.Class)
	}
	if rr.Text == "" && len(rr.Data) == 0 {
		return fmt.Errorf("either Text or Data must be set")
	}
	return nil
}

// String renders the record in zone-file presentation form.
func (rr ResourceRecord) String() string {
	return fmt.Sprintf("%s %d %s %s %s", rr.Name, rr.TTL, rr.Class, rr.Type, rr.Text)
}
