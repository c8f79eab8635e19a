package rrdata

import (
	"fmt"

	"github.com/probekit/dnslab/internal/dns/domain"
)

// encoders is the closed set of record types the fixture can serve. Zone
// building consults the same set, so an unsupported type is caught before the
// server ever answers with it.
var encoders = map[domain.RRType]func(string) ([]byte, error){
	domain.RRTypeA:     encodeAData,     // 1
	domain.RRTypeNS:    encodeNSData,    // 2
	domain.RRTypeCNAME: encodeCNAMEData, // 5
	domain.RRTypeSOA:   encodeSOAData,   // 6
	domain.RRTypeMX:    encodeMXData,    // 15
	domain.RRTypeTXT:   encodeTXTData,   // 16
	domain.RRTypeAAAA:  encodeAAAAData,  // 28
}

// Encode encodes a record value based on its type, to its binary representation.
func Encode(rrType domain.RRType, data string) ([]byte, error) {
	enc, ok := encoders[rrType]
	if !ok {
		return nil, fmt.Errorf("no encoder for %s records", rrType)
	}
	return enc(data)
}

// CanEncode reports whether the given type has an encoder.
func CanEncode(rrType domain.RRType) bool {
	_, ok := encoders[rrType]
	return ok
}

// SupportedTypes returns the record types with encoders, for error messages
// and zone validation.
func SupportedTypes() []domain.RRType {
	types := make([]domain.RRType, 0, len(encoders))
	for t := range encoders {
		types = append(types, t)
	}
	return types
}
