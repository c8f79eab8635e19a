package rrdata

import (
	"bytes"
	"testing"
)

func TestEncodeAData(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []byte
		expectError bool
	}{
		{
			name:     "documentation range address",
			input:    "192.0.2.1",
			expected: []byte{192, 0, 2, 1},
		},
		{
			name:     "loopback",
			input:    "127.0.0.1",
			expected: []byte{127, 0, 0, 1},
		},
		{
			name:        "IPv6 address fails",
			input:       "2001:db8::1",
			expectError: true,
		},
		{
			name:        "not an address",
			input:       "mail.example.com",
			expectError: true,
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeAData(tt.input)
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
				t.Errorf("encodeAData(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDecodeAData(t *testing.T) {
	got, err := decodeAData([]byte{192, 0, 2, 10})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "192.0.2.10" {
		t.Errorf("decodeAData = %q, want %q", got, "192.0.2.10")
	}

	if _, err := decodeAData([]byte{192, 0, 2}); err == nil {
		t.Errorf("Expected error for short data")
	}
}
