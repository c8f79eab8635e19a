package utils

import "strings"

// CanonicalDNSName returns a DNS name in the canonical form used as the key
// for all zone lookups:
// - Lowercased
// - Trimmed of surrounding whitespace
// - Exactly one trailing dot (fully qualified)
// An empty or whitespace-only input stays empty so callers can reject it.
func CanonicalDNSName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	if name == "" {
		return ""
	}
	// collapse any run of trailing dots to a single one
	trimmed := strings.TrimRight(name, ".")
	if trimmed == "" {
		// the root zone itself
		return "."
	}
	return trimmed + "."
}

// PresentationDNSName strips the trailing dot for contexts where relative
// presentation is expected, such as label-by-label wire encoding.
func PresentationDNSName(name string) string {
	if name == "." {
		return ""
	}
	return strings.TrimSuffix(name, ".")
}

// AncestorNames returns the canonical ancestor names of a DNS name, nearest
// parent first, stopping before the root. For "a.b.dnstest.local." it yields
// ["b.dnstest.local.", "dnstest.local.", "local."]. Names at or below one
// label yield nothing.
func AncestorNames(name string) []string {
	canonical := CanonicalDNSName(name)
	if canonical == "" || canonical == "." {
		return nil
	}
	labels := strings.Split(PresentationDNSName(canonical), ".")
	var ancestors []string
	for i := 1; i < len(labels); i++ {
		ancestors = append(ancestors, strings.Join(labels[i:], ".")+".")
	}
	return ancestors
}
