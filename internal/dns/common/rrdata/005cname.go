package rrdata

// encodeCNAMEData encodes a CNAME record string into its binary representation.
func encodeCNAMEData(data string) ([]byte, error) {
	// data = "target.example.com."
	return EncodeDomainName(data)
}

// decodeCNAMEData decodes a byte slice representing a CNAME record's RDATA.
func decodeCNAMEData(b []byte) (string, error) {
	return DecodeDomainName(b)
}
