package rrdata

// encodeNSData encodes an NS record string into its binary representation.
func encodeNSData(data string) ([]byte, error) {
	// data = "ns1.dnstest.local."
	return EncodeDomainName(data)
}

// decodeNSData decodes a byte slice representing an NS record's RDATA.
func decodeNSData(b []byte) (string, error) {
	return DecodeDomainName(b)
}
