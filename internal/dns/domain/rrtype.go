package domain

import "fmt"

// RRType represents a DNS resource record type (e.g. A, AAAA, MX).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA     RRType = 1   // A - IPv4 address
	RRTypeNS    RRType = 2   // NS - Name server
	RRTypeCNAME RRType = 5   // CNAME - Canonical name
	RRTypeSOA   RRType = 6   // SOA - Start of authority
	RRTypePTR   RRType = 12  // PTR - Pointer
	RRTypeMX    RRType = 15  // MX - Mail exchange
	RRTypeTXT   RRType = 16  // TXT - Text
	RRTypeAAAA  RRType = 28  // AAAA - IPv6 address
	RRTypeSRV   RRType = 33  // SRV - Service
	RRTypeOPT   RRType = 41  // OPT - EDNS option
	RRTypeANY   RRType = 255 // ANY - Any type (query only)
	RRTypeCAA   RRType = 257 // CAA - Certificate authority authorization
)

var rrTypeNames = map[RRType]string{
	RRTypeA:     "A",
	RRTypeNS:    "NS",
	RRTypeCNAME: "CNAME",
	RRTypeSOA:   "SOA",
	RRTypePTR:   "PTR",
	RRTypeMX:    "MX",
	RRTypeTXT:   "TXT",
	RRTypeAAAA:  "AAAA",
	RRTypeSRV:   "SRV",
	RRTypeOPT:   "OPT",
	RRTypeANY:   "ANY",
	RRTypeCAA:   "CAA",
}

var rrTypeValues = func() map[string]RRType {
	m := make(map[string]RRType, len(rrTypeNames))
	for t, name := range rrTypeNames {
		m[name] = t
	}
	return m
}()

// IsValid returns true if the RRType is one of the supported types.
func (t RRType) IsValid() bool {
	_, ok := rrTypeNames[t]
	return ok
}

// String returns the textual representation of the RRType.
// For unknown types, it returns "UNKNOWN(<value>)".
func (t RRType) String() string {
	if name, ok := rrTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", t)
}

// RRTypeFromString converts a record type string to its corresponding RRType value.
// Unknown strings yield the zero RRType, which is not valid.
func RRTypeFromString(s string) RRType {
	return rrTypeValues[s]
}
