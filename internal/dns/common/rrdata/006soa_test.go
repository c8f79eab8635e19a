package rrdata

import (
	"encoding/binary"
	"testing"
)

// the base fixture zone's SOA value
const fixtureSOA = "ns1.dnstest.local admin.dnstest.local 1 3600 600 86400 300"

func TestEncodeSOAData(t *testing.T) {
	got, err := encodeSOAData(fixtureSOA)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// mname (19) + rname (21) + five uint32 (20)
	if len(got) != 60 {
		t.Fatalf("encoded length = %d, want 60", len(got))
	}

	// the five integers sit at the tail
	ints := got[40:]
	expected := []uint32{1, 3600, 600, 86400, 300}
	for i, want := range expected {
		if v := binary.BigEndian.Uint32(ints[i*4:]); v != want {
			t.Errorf("integer field %d = %d, want %d", i, v, want)
		}
	}
}

func TestEncodeSOAData_FieldCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"six fields", "ns1.dnstest.local admin.dnstest.local 1 3600 600 86400"},
		{"eight fields", "ns1.dnstest.local admin.dnstest.local 1 3600 600 86400 300 17"},
		{"empty", ""},
		{"non-numeric serial", "ns1.dnstest.local admin.dnstest.local abc 3600 600 86400 300"},
		{"negative refresh", "ns1.dnstest.local admin.dnstest.local 1 -1 600 86400 300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := encodeSOAData(tt.input); err == nil {
				t.Errorf("Expected error for %q", tt.input)
			}
		})
	}
}

func TestDecodeSOAData_RoundTrip(t *testing.T) {
	encoded, err := encodeSOAData(fixtureSOA)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, err := decodeSOAData(encoded)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != fixtureSOA {
		t.Errorf("round trip = %q, want %q", got, fixtureSOA)
	}
}

func TestDecodeSOAData_Short(t *testing.T) {
	if _, err := decodeSOAData([]byte{1, 'a', 0}); err == nil {
		t.Errorf("Expected error for truncated SOA data")
	}
}
