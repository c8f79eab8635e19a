package rrdata

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeTXTData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{
			name:     "SPF policy stays one character-string",
			input:    "v=spf1 ip4:192.0.2.0/24 include:_spf.google.com -all",
			expected: append([]byte{52}, "v=spf1 ip4:192.0.2.0/24 include:_spf.google.com -all"...),
		},
		{
			name: "semicolons are payload, not separators",
			// DMARC-style values carry semicolons that must survive intact
			input:    "v=DMARC1; p=none",
			expected: append([]byte{16}, "v=DMARC1; p=none"...),
		},
		{
			name:     "short text",
			input:    "hello",
			expected: []byte{5, 'h', 'e', 'l', 'l', 'o'},
		},
		{
			name:     "empty text is one empty character-string",
			input:    "",
			expected: []byte{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeTXTData(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("encodeTXTData(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEncodeTXTData_LongValueChunks(t *testing.T) {
	input := strings.Repeat("a", 300)
	got, err := encodeTXTData(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// 255-byte chunk then 45-byte chunk, each length-prefixed
	if len(got) != 302 {
		t.Fatalf("encoded length = %d, want 302", len(got))
	}
	if got[0] != 255 {
		t.Errorf("first segment length = %d, want 255", got[0])
	}
	if got[256] != 45 {
		t.Errorf("second segment length = %d, want 45", got[256])
	}

	decoded, err := decodeTXTData(got)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if decoded != input {
		t.Errorf("round trip lost data: got %d bytes, want %d", len(decoded), len(input))
	}
}

func TestDecodeTXTData(t *testing.T) {
	got, err := decodeTXTData([]byte{5, 'h', 'e', 'l', 'l', 'o'})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("decodeTXTData = %q, want %q", got, "hello")
	}

	if _, err := decodeTXTData([]byte{9, 'x'}); err == nil {
		t.Errorf("Expected error for truncated segment")
	}
}
