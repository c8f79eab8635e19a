package domain

import "testing"

func TestRRClass_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		class RRClass
		want  bool
	}{
		{"IN is valid", RRClassIN, true},
		{"CH is valid", RRClassCH, true},
		{"HS is valid", RRClassHS, true},
		{"ANY is valid", RRClassANY, true},
		{"zero is invalid", 0, false},
		{"unassigned value is invalid", 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.class.IsValid(); got != tt.want {
				t.Errorf("RRClass(%d).IsValid() = %v, want %v", tt.class, got, tt.want)
			}
		})
	}
}

func TestRRClass_String(t *testing.T) {
	tests := []struct {
		class RRClass
		want  string
	}{
		{RRClassIN, "IN"},
		{RRClassCH, "CH"},
		{RRClassHS, "HS"},
		{RRClassANY, "ANY"},
		{42, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("RRClass(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}

func TestParseRRClass(t *testing.T) {
	tests := []struct {
		s    string
		want RRClass
	}{
		{"IN", RRClassIN},
		{"CH", RRClassCH},
		{"HS", RRClassHS},
		{"ANY", RRClassANY},
		{"in", 0},
		{"BOGUS", 0},
	}

	for _, tt := range tests {
		if got := ParseRRClass(tt.s); got != tt.want {
			t.Errorf("ParseRRClass(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}
