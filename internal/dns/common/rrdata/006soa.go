package rrdata

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// encodeSOAData encodes an SOA record string into its binary representation.
// The value must carry exactly seven fields; anything else is malformed and
// the record is skipped by the resolver.
func encodeSOAData(data string) ([]byte, error) {
	// data = "mname rname serial refresh retry expire minimum"
	parts := strings.Fields(data)
	if len(parts) != 7 {
		return nil, fmt.Errorf("invalid SOA record format (expected 7 fields, got %d): %s", len(parts), data)
	}

	// mname is the primary name server for the zone
	mname, err := EncodeDomainName(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid SOA mname: %v", err)
	}

	// rname is the zone contact in domain form, first label standing in for
	// the mailbox local part
	rname, err := EncodeDomainName(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid SOA rname: %v", err)
	}

	// serial, refresh, retry, expire, minimum
	u32 := make([]byte, 20)
	for i := 0; i < 5; i++ {
		val, err := strconv.ParseUint(parts[i+2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid SOA field %d: %v", i+2, err)
		}
		binary.BigEndian.PutUint32(u32[i*4:], uint32(val))
	}

	var encoded []byte
	encoded = append(encoded, mname...)
	encoded = append(encoded, rname...)
	encoded = append(encoded, u32...)

	return encoded, nil
}

// decodeSOAData decodes an SOA record from its binary representation.
func decodeSOAData(b []byte) (string, error) {
	if len(b) < 22 {
		return "", fmt.Errorf("invalid SOA data length: %d", len(b))
	}

	mname, err := DecodeDomainName(b)
	if err != nil {
		return "", fmt.Errorf("invalid SOA mname: %v", err)
	}
	offset := wireNameLen(mname)

	rname, err := DecodeDomainName(b[offset:])
	if err != nil {
		return "", fmt.Errorf("invalid SOA rname: %v", err)
	}
	offset += wireNameLen(rname)

	if len(b[offset:]) < 20 {
		return "", fmt.Errorf("SOA record missing integer fields")
	}

	var u32 [5]uint32
	for i := 0; i < 5; i++ {
		u32[i] = binary.BigEndian.Uint32(b[offset+i*4 : offset+(i+1)*4])
	}

	return fmt.Sprintf("%s %s %d %d %d %d %d", mname, rname, u32[0], u32[1], u32[2], u32[3], u32[4]), nil
}
