package rrdata

import "fmt"

// encodeTXTData encodes a TXT record string into its binary representation.
// One zone value is one TXT record; values longer than 255 bytes are split
// into consecutive character-strings within the same record per RFC 1035
// section 3.3.14. The value is never split on interior punctuation, since SPF
// policies and similar payloads must arrive byte-for-byte intact.
func encodeTXTData(data string) ([]byte, error) {
	if len(data) == 0 {
		// a TXT record holding one empty character-string
		return []byte{0}, nil
	}
	var encoded []byte
	for len(data) > 0 {
		chunk := data
		if len(chunk) > 255 {
			chunk = data[:255]
		}
		encoded = append(encoded, byte(len(chunk)))
		encoded = append(encoded, chunk...)
		data = data[len(chunk):]
	}
	return encoded, nil
}

// decodeTXTData decodes TXT RDATA by concatenating its character-strings.
func decodeTXTData(b []byte) (string, error) {
	var out []byte
	for i := 0; i < len(b); {
		segLen := int(b[i])
		i++
		if i+segLen > len(b) {
			return "", fmt.Errorf("invalid TXT segment length")
		}
		out = append(out, b[i:i+segLen]...)
		i += segLen
	}
	return string(out), nil
}
