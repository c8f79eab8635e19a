package rrdata

import (
	"fmt"

	"github.com/probekit/dnslab/internal/dns/domain"
)

var decoders = map[domain.RRType]func([]byte) (string, error){
	domain.RRTypeA:     decodeAData,     // 1
	domain.RRTypeNS:    decodeNSData,    // 2
	domain.RRTypeCNAME: decodeCNAMEData, // 5
	domain.RRTypeSOA:   decodeSOAData,   // 6
	domain.RRTypeMX:    decodeMXData,    // 15
	domain.RRTypeTXT:   decodeTXTData,   // 16
	domain.RRTypeAAAA:  decodeAAAAData,  // 28
}

// Decode decodes a record value based on its type, from its binary representation.
func Decode(rrType domain.RRType, data []byte) (string, error) {
	dec, ok := decoders[rrType]
	if !ok {
		return "", fmt.Errorf("no decoder for %s records", rrType)
	}
	return dec(data)
}
