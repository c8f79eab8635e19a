package rrdata

import (
	"bytes"
	"testing"
)

func TestEncodeMXData(t *testing.T) {
	mail1 := []byte{
		5, 'm', 'a', 'i', 'l', '1',
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
		3, 'c', 'o', 'm',
		0,
	}

	tests := []struct {
		name        string
		input       string
		expected    []byte
		expectError bool
	}{
		{
			name:     "preference and exchange",
			input:    "10 mail1.example.com.",
			expected: append([]byte{0, 10}, mail1...),
		},
		{
			name:     "zero preference",
			input:    "0 mail1.example.com.",
			expected: append([]byte{0, 0}, mail1...),
		},
		{
			name:     "bare exchange gets default preference",
			input:    "mail1.example.com.",
			expected: append([]byte{0, 10}, mail1...),
		},
		{
			name:        "three fields fail",
			input:       "10 20 mail1.example.com.",
			expectError: true,
		},
		{
			name:        "non-numeric preference fails",
			input:       "ten mail1.example.com.",
			expectError: true,
		},
		{
			name:        "preference out of range fails",
			input:       "65536 mail1.example.com.",
			expectError: true,
		},
		{
			name:        "empty fails",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeMXData(tt.input)
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
				t.Errorf("encodeMXData(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDecodeMXData(t *testing.T) {
	encoded, err := encodeMXData("10 mail2.example.com.")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, err := decodeMXData(encoded)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "10 mail2.example.com" {
		t.Errorf("decodeMXData = %q, want %q", got, "10 mail2.example.com")
	}

	if _, err := decodeMXData([]byte{0}); err == nil {
		t.Errorf("Expected error for short MX data")
	}
}
