// Package zone loads DNS zone files in YAML, JSON, or TOML form and turns
// them into the raw name -> type -> values map the zone store builds from.
// Each name in a zone file becomes its own entry keyed by fully qualified
// canonical name; `zone_root` anchors relative labels and `@` names the root
// itself.
package zone

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"

	"github.com/probekit/dnslab/internal/dns/common/utils"
	"github.com/probekit/dnslab/internal/dns/repos/zonestore"
)

// LoadDirectory walks the given directory, loading every supported zone file
// (YAML, JSON, TOML) and merging the results into one RawZones map. Any file
// that fails to parse aborts the whole load.
func LoadDirectory(dir string) (zonestore.RawZones, error) {
	zones := make(zonestore.RawZones)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		fileZones, err := loadZoneFile(path)
		if err != nil {
			return fmt.Errorf("error parsing zone file %s: %w", path, err)
		}
		for name, records := range fileZones {
			dest, ok := zones[name]
			if !ok {
				dest = make(map[string][]string, len(records))
				zones[name] = dest
			}
			mergeRecords(dest, records)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// expandName returns the fully qualified domain name for a label, expanding
// '@' to the root and appending the root when the label is not already
// absolute.
func expandName(label, root string) string {
	if label == "@" {
		return root
	}
	if strings.HasSuffix(label, ".") {
		return label
	}
	return label + "." + root
}

// toStringValues converts a raw koanf-parsed value (string or []any of
// strings) into a slice of non-empty strings. Empty and non-string elements
// are skipped; type tag validation happens later in the zone store.
func toStringValues(val any) []string {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		return []string{s}
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				continue
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			out = append(out, s)
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

// mergeRecords appends src values into dst by type tag, preserving order.
func mergeRecords(dst, src map[string][]string) {
	for tag, values := range src {
		dst[tag] = append(dst[tag], values...)
	}
}

// loadZoneFile loads and parses a single zone file, returning a map of
// canonical fully qualified names to their type -> values records. Files with
// unsupported extensions are skipped by returning an empty result.
func loadZoneFile(path string) (map[string]map[string][]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return nil, nil // unsupported file type
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load zone file: %w", err)
	}

	root := k.String("zone_root")
	if root == "" {
		return nil, fmt.Errorf("missing 'zone_root'")
	}
	root = utils.CanonicalDNSName(root)

	zones := make(map[string]map[string][]string)
	for name, raw := range k.Raw() {
		if name == "zone_root" {
			continue
		}
		rawMap, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		fqdn := utils.CanonicalDNSName(expandName(name, root))
		records := make(map[string][]string, len(rawMap))
		for rrType, val := range rawMap {
			values := toStringValues(val)
			if len(values) == 0 {
				continue
			}
			records[rrType] = append(records[rrType], values...)
		}
		if len(records) == 0 {
			continue
		}

		dest, ok := zones[fqdn]
		if !ok {
			zones[fqdn] = records
			continue
		}
		mergeRecords(dest, records)
	}
	return zones, nil
}
