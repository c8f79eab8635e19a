package rrdata

import (
	"bytes"
	"testing"
)

func TestEncodeDomainName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []byte
		expectError bool
	}{
		{
			name:     "two labels",
			input:    "dnstest.local.",
			expected: []byte{7, 'd', 'n', 's', 't', 'e', 's', 't', 5, 'l', 'o', 'c', 'a', 'l', 0},
		},
		{
			name:     "undotted input encodes identically",
			input:    "dnstest.local",
			expected: []byte{7, 'd', 'n', 's', 't', 'e', 's', 't', 5, 'l', 'o', 'c', 'a', 'l', 0},
		},
		{
			name:     "mixed case is canonicalized",
			input:    "DNSTest.Local.",
			expected: []byte{7, 'd', 'n', 's', 't', 'e', 's', 't', 5, 'l', 'o', 'c', 'a', 'l', 0},
		},
		{
			name:     "root encodes as lone terminator",
			input:    ".",
			expected: []byte{0},
		},
		{
			name:        "overlong label fails",
			input:       "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa.example.com.",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeDomainName(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("EncodeDomainName(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDecodeDomainName(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expected    string
		expectError bool
	}{
		{
			name:     "two labels",
			input:    []byte{7, 'd', 'n', 's', 't', 'e', 's', 't', 5, 'l', 'o', 'c', 'a', 'l', 0},
			expected: "dnstest.local",
		},
		{
			name:     "lone terminator is the root",
			input:    []byte{0},
			expected: "",
		},
		{
			name:        "length byte past end fails",
			input:       []byte{7, 'd', 'n', 's'},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDomainName(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if got != tt.expected {
				t.Errorf("DecodeDomainName(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEncodeDecodeDomainName_RoundTrip(t *testing.T) {
	names := []string{
		"dnstest.local.",
		"spf-valid.dnstest.local.",
		"ns1.dnstest.local.",
		"mail1.example.com.",
	}
	for _, name := range names {
		encoded, err := EncodeDomainName(name)
		if err != nil {
			t.Fatalf("encoding %q: %v", name, err)
		}
		decoded, err := DecodeDomainName(encoded)
		if err != nil {
			t.Fatalf("decoding %q: %v", name, err)
		}
		want := name[:len(name)-1] // presentation form drops the dot
		if decoded != want {
			t.Errorf("round trip of %q: got %q, want %q", name, decoded, want)
		}
	}
}

func TestWireNameLen(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"dnstest.local", 15},
		{"ns1.dnstest.local", 19},
		{"", 1},
	}
	for _, tt := range tests {
		if got := wireNameLen(tt.name); got != tt.expected {
			t.Errorf("wireNameLen(%q) = %d, want %d", tt.name, got, tt.expected)
		}
		// must agree with the encoder
		encoded, err := EncodeDomainName(tt.name + ".")
		if err != nil {
			t.Fatalf("encoding %q: %v", tt.name, err)
		}
		if len(encoded) != tt.expected {
			t.Errorf("encoded length of %q = %d, want %d", tt.name, len(encoded), tt.expected)
		}
	}
}
