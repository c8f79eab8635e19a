// Package fixtures carries the built-in zone catalog and scenario metadata
// for the DNS lab. Each zone stages one deliberately healthy or deliberately
// broken DNS setup; the catalog is what the fixture serves when no zone
// directory is configured.
//
// Answers synthesized from these zones always carry TTL 300; the low-ttl and
// high-ttl zones exist so their names resolve, not to vary TTLs.
package fixtures

import (
	"fmt"
	"slices"

	"github.com/probekit/dnslab/internal/dns/repos/zonestore"
)

// TestDomain anchors every built-in zone.
const TestDomain = "dnstest.local"

// Name returns the fully qualified name of a scenario zone under TestDomain.
func Name(label string) string {
	return label + "." + TestDomain
}

// mx renders an MX value in presentation form, preference first.
func mx(preference int, host string) string {
	return fmt.Sprintf("%d %s", preference, host)
}

// soa renders the seven SOA fields in presentation order.
func soa(mname, rname string, serial, refresh, retry, expire, minimum int) string {
	return fmt.Sprintf("%s %s %d %d %d %d %d", mname, rname, serial, refresh, retry, expire, minimum)
}

// SPF scenarios: one TXT shape per way an SPF record goes wrong.
var spfZones = zonestore.RawZones{
	Name("spf-valid"): {
		"A":   {"192.0.2.1"},
		"TXT": {"v=spf1 ip4:192.0.2.0/24 include:_spf.google.com -all"},
	},
	// Two SPF records at one name cause a permerror.
	Name("spf-multiple"): {
		"A": {"192.0.2.2"},
		"TXT": {
			"v=spf1 include:_spf.google.com -all",
			"v=spf1 include:sendgrid.net -all",
		},
	},
	// +all lets anyone spoof the domain.
	Name("spf-permissive"): {
		"A":   {"192.0.2.3"},
		"TXT": {"v=spf1 +all"},
	},
	// No -all or ~all terminator.
	Name("spf-incomplete"): {
		"A":   {"192.0.2.4"},
		"TXT": {"v=spf1 ip4:192.0.2.0/24"},
	},
	Name("spf-softfail"): {
		"A":   {"192.0.2.5"},
		"TXT": {"v=spf1 ip4:192.0.2.0/24 ~all"},
	},
	// ptr mechanism is deprecated by RFC 7208.
	Name("spf-deprecated"): {
		"A":   {"192.0.2.6"},
		"TXT": {"v=spf1 ptr:example.com -all"},
	},
	// Eleven includes, one past the ten-lookup limit.
	Name("spf-too-many-lookups"): {
		"A": {"192.0.2.7"},
		"TXT": {"v=spf1" +
			" include:a.test" +
			" include:b.test" +
			" include:c.test" +
			" include:d.test" +
			" include:e.test" +
			" include:f.test" +
			" include:g.test" +
			" include:h.test" +
			" include:i.test" +
			" include:j.test" +
			" include:k.test" +
			" -all"},
	},
}

// Record conflict scenarios.
var conflictZones = zonestore.RawZones{
	// CNAME coexisting with an A record at the same name is invalid.
	Name("cname-conflict"): {
		"A":     {"192.0.2.10"},
		"CNAME": {"target.example.com."},
	},
	// Several A records at one name is ordinary load balancing.
	Name("multi-a"): {
		"A": {"192.0.2.11", "192.0.2.12", "192.0.2.13"},
	},
	Name("duplicate-mx"): {
		"A":  {"192.0.2.14"},
		"MX": {mx(10, "mail1.example.com."), mx(10, "mail2.example.com.")},
	},
	Name("valid-mx"): {
		"A":  {"192.0.2.15"},
		"MX": {mx(10, "mail1.example.com."), mx(20, "mail2.example.com.")},
	},
}

// Delegation scenarios.
var delegationZones = zonestore.RawZones{
	Name("valid-delegation"): {
		"A":  {"192.0.2.20"},
		"NS": {"ns1." + Name("valid-delegation") + ".", "ns2." + Name("valid-delegation") + "."},
	},
	"ns1." + Name("valid-delegation"): {
		"A": {"192.0.2.53"},
	},
	"ns2." + Name("valid-delegation"): {
		"A": {"192.0.2.54"},
	},
	// NS pointing at a host that does not exist.
	Name("broken-ns"): {
		"A":  {"192.0.2.21"},
		"NS": {"ns1.nonexistent.invalid."},
	},
}

// TTL scenarios. The names resolve; the TTL itself is the fixture-wide 300.
var ttlZones = zonestore.RawZones{
	Name("low-ttl"): {
		"A": {"192.0.2.30"},
	},
	Name("high-ttl"): {
		"A": {"192.0.2.31"},
	},
}

// Zones returns the full built-in catalog, apex SOA/NS included, as loader
// output ready for zonestore.New. Each call returns a fresh copy.
func Zones() zonestore.RawZones {
	all := zonestore.RawZones{}
	for _, group := range []zonestore.RawZones{spfZones, conflictZones, delegationZones, ttlZones} {
		for name, records := range group {
			copied := make(map[string][]string, len(records))
			for tag, values := range records {
				copied[tag] = slices.Clone(values)
			}
			all[name] = copied
		}
	}

	all[TestDomain] = map[string][]string{
		"SOA": {soa("ns1."+TestDomain, "admin."+TestDomain, 1, 3600, 600, 86400, 300)},
		"NS":  {"ns1." + TestDomain + ".", "ns2." + TestDomain + "."},
	}
	all["ns1."+TestDomain] = map[string][]string{"A": {"127.0.0.1"}}
	all["ns2."+TestDomain] = map[string][]string{"A": {"127.0.0.1"}}
	return all
}
