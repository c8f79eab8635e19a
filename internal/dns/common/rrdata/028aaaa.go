package rrdata

import (
	"fmt"
	"net"
)

// encodeAAAAData encodes an AAAA record string into its binary representation.
func encodeAAAAData(data string) ([]byte, error) {
	// data = "2001:db8::1"
	ip := net.ParseIP(data)
	if ip == nil || !isIPv6(ip) {
		return nil, fmt.Errorf("invalid AAAA record IP: %s", data)
	}
	return ip.To16(), nil
}

// decodeAAAAData decodes 16 bytes of AAAA record RDATA to text form.
func decodeAAAAData(b []byte) (string, error) {
	if len(b) != 16 {
		return "", fmt.Errorf("invalid AAAA data length: %d", len(b))
	}
	return net.IP(b).String(), nil
}
