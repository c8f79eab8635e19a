package rrdata

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// defaultMXPreference is applied when a zone defines an MX value as a bare
// exchange host without a preference.
const defaultMXPreference = 10

// encodeMXData encodes an MX record string into its binary representation.
// Accepted forms are "preference exchange" and a bare "exchange", which gets
// the default preference.
func encodeMXData(data string) ([]byte, error) {
	parts := strings.Fields(data)

	var pref int
	var exchange string
	switch len(parts) {
	case 1:
		// data = "mail.example.com."
		pref = defaultMXPreference
		exchange = parts[0]
	case 2:
		// data = "10 mail.example.com."
		p, err := strconv.Atoi(parts[0])
		if err != nil || p < 0 || p > 65535 {
			return nil, fmt.Errorf("invalid MX preference: %s", parts[0])
		}
		pref = p
		exchange = parts[1]
	default:
		return nil, fmt.Errorf("invalid MX record format (expected: [preference] exchange): %s", data)
	}

	prefBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(prefBytes, uint16(pref))

	encodedDomain, err := EncodeDomainName(exchange)
	if err != nil {
		return nil, fmt.Errorf("invalid MX exchange domain: %s", exchange)
	}
	return append(prefBytes, encodedDomain...), nil
}

// decodeMXData decodes MX record data from the given byte slice.
func decodeMXData(b []byte) (string, error) {
	if len(b) < 2 {
		return "", fmt.Errorf("invalid MX data length")
	}
	pref := binary.BigEndian.Uint16(b[:2])
	exchange, err := DecodeDomainName(b[2:])
	if err != nil {
		return "", fmt.Errorf("invalid MX exchange domain: %v", err)
	}
	return fmt.Sprintf("%d %s", pref, exchange), nil
}
