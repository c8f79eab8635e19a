package zone

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testYAML = `
zone_root: dnstest.local
"@":
  SOA: "ns1.dnstest.local admin.dnstest.local 1 3600 600 86400 300"
  NS:
    - "ns1.dnstest.local"
    - "ns2.dnstest.local"
spf-valid:
  A: "192.0.2.1"
  TXT: "v=spf1 ip4:192.0.2.0/24 -all"
multi-a:
  A:
    - "192.0.2.10"
    - "192.0.2.11"
    - "192.0.2.12"
ns1.dnstest.local.:
  A: "127.0.0.1"
`

const testJSON = `{
	"zone_root": "example.org",
	"api": {
		"A": "5.6.7.8"
	}
}
`

const testTOML = `zone_root = "example.net"
[web]
A = "1.2.3.4"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "fixtures.yaml", testYAML)
	writeFile(t, tmpDir, "api.json", testJSON)
	writeFile(t, tmpDir, "web.toml", testTOML)

	zones, err := LoadDirectory(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 4 names from YAML plus one each from JSON and TOML.
	if len(zones) != 6 {
		t.Fatalf("expected 6 zones, got %d: %v", len(zones), zones)
	}

	tests := []struct {
		name string
		tag  string
		want []string
	}{
		{"dnstest.local.", "SOA", []string{"ns1.dnstest.local admin.dnstest.local 1 3600 600 86400 300"}},
		{"dnstest.local.", "NS", []string{"ns1.dnstest.local", "ns2.dnstest.local"}},
		{"spf-valid.dnstest.local.", "A", []string{"192.0.2.1"}},
		{"spf-valid.dnstest.local.", "TXT", []string{"v=spf1 ip4:192.0.2.0/24 -all"}},
		{"multi-a.dnstest.local.", "A", []string{"192.0.2.10", "192.0.2.11", "192.0.2.12"}},
		{"ns1.dnstest.local.", "A", []string{"127.0.0.1"}},
		{"api.example.org.", "A", []string{"5.6.7.8"}},
		{"web.example.net.", "A", []string{"1.2.3.4"}},
	}
	for _, tt := range tests {
		records, ok := zones[tt.name]
		if !ok {
			t.Errorf("zone %q not loaded; have %v", tt.name, zones)
			continue
		}
		if got := records[tt.tag]; !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s %s = %v, want %v", tt.name, tt.tag, got, tt.want)
		}
	}
}

func TestLoadDirectory_Empty(t *testing.T) {
	zones, err := LoadDirectory(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(zones) != 0 {
		t.Errorf("expected 0 zones, got %d", len(zones))
	}
}

func TestLoadDirectory_SkipsUnsupportedExtensions(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "notes.txt", "not a zone file")

	zones, err := LoadDirectory(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(zones) != 0 {
		t.Errorf("expected 0 zones, got %d", len(zones))
	}
}

func TestLoadDirectory_ParseFailureAborts(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "broken.yaml", "zone_root: [unclosed")

	_, err := LoadDirectory(tmpDir)
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestLoadDirectory_MissingZoneRoot(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "rootless.yaml", "www:\n  A: \"1.2.3.4\"\n")

	_, err := LoadDirectory(tmpDir)
	if err == nil {
		t.Fatal("expected missing zone_root error, got nil")
	}
}

func TestLoadDirectory_MergesAcrossFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a.yaml", "zone_root: dnstest.local\nshared:\n  A: \"192.0.2.1\"\n")
	writeFile(t, tmpDir, "b.yaml", "zone_root: dnstest.local\nshared:\n  A: \"192.0.2.2\"\n  TXT: \"hello\"\n")

	zones, err := LoadDirectory(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, ok := zones["shared.dnstest.local."]
	if !ok {
		t.Fatalf("merged zone not found: %v", zones)
	}
	if len(records["A"]) != 2 {
		t.Errorf("expected 2 A values after merge, got %v", records["A"])
	}
	if len(records["TXT"]) != 1 {
		t.Errorf("expected 1 TXT value, got %v", records["TXT"])
	}
}

func TestExpandName(t *testing.T) {
	tests := []struct {
		label string
		root  string
		want  string
	}{
		{"@", "dnstest.local.", "dnstest.local."},
		{"www", "dnstest.local.", "www.dnstest.local."},
		{"already.absolute.", "dnstest.local.", "already.absolute."},
	}
	for _, tt := range tests {
		if got := expandName(tt.label, tt.root); got != tt.want {
			t.Errorf("expandName(%q, %q) = %q, want %q", tt.label, tt.root, got, tt.want)
		}
	}
}

func TestToStringValues(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want []string
	}{
		{"single string", "192.0.2.1", []string{"192.0.2.1"}},
		{"padded string", "  192.0.2.1  ", []string{"192.0.2.1"}},
		{"empty string", "   ", nil},
		{"string slice", []any{"a", "b"}, []string{"a", "b"}},
		{"mixed slice skips non-strings", []any{"a", 42, "b"}, []string{"a", "b"}},
		{"all invalid", []any{42, true}, nil},
		{"unsupported type", 42, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toStringValues(tt.val); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("toStringValues(%v) = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}
