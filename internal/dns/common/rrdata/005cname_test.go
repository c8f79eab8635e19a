package rrdata

import (
	"bytes"
	"testing"
)

func TestEncodeCNAMEData(t *testing.T) {
	got, err := encodeCNAMEData("target.example.com.")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := []byte{
		6, 't', 'a', 'r', 'g', 'e', 't',
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
		3, 'c', 'o', 'm',
		0,
	}
	if !bytes.Equal(got, expected) {
		t.Errorf("encodeCNAMEData = %v, want %v", got, expected)
	}
}

func TestDecodeCNAMEData(t *testing.T) {
	encoded, err := encodeCNAMEData("target.example.com.")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, err := decodeCNAMEData(encoded)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "target.example.com" {
		t.Errorf("decodeCNAMEData = %q, want %q", got, "target.example.com")
	}
}
