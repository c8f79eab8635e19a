package fixtures

import (
	"context"
	"net"
	"strings"
	"testing"

	"github.com/probekit/dnslab/internal/dns/domain"
	"github.com/probekit/dnslab/internal/dns/repos/zonestore"
	"github.com/probekit/dnslab/internal/dns/services/resolver"
)

func TestName(t *testing.T) {
	if got := Name("spf-valid"); got != "spf-valid.dnstest.local" {
		t.Fatalf("Name=%q", got)
	}
}

func TestZones_BuildsValidStore(t *testing.T) {
	store, err := zonestore.New(Zones())
	if err != nil {
		t.Fatalf("catalog failed store validation: %v", err)
	}
	// 7 SPF + 4 conflict + 4 delegation + 2 TTL + apex + ns1 + ns2.
	if got := store.Len(); got != 20 {
		t.Fatalf("store holds %d zones, want 20", got)
	}
}

func TestZones_CarriesOriginalValues(t *testing.T) {
	zones := Zones()

	txt := zones[Name("spf-valid")]["TXT"]
	if len(txt) != 1 || txt[0] != "v=spf1 ip4:192.0.2.0/24 include:_spf.google.com -all" {
		t.Fatalf("spf-valid TXT=%v", txt)
	}

	a := zones[Name("multi-a")]["A"]
	want := []string{"192.0.2.11", "192.0.2.12", "192.0.2.13"}
	if len(a) != len(want) {
		t.Fatalf("multi-a A=%v", a)
	}
	for i := range want {
		if a[i] != want[i] {
			t.Fatalf("multi-a A[%d]=%q want=%q", i, a[i], want[i])
		}
	}

	mxs := zones[Name("duplicate-mx")]["MX"]
	if len(mxs) != 2 || mxs[0] != "10 mail1.example.com." || mxs[1] != "10 mail2.example.com." {
		t.Fatalf("duplicate-mx MX=%v", mxs)
	}
	mxs = zones[Name("valid-mx")]["MX"]
	if len(mxs) != 2 || mxs[0] != "10 mail1.example.com." || mxs[1] != "20 mail2.example.com." {
		t.Fatalf("valid-mx MX=%v", mxs)
	}

	soas := zones[TestDomain]["SOA"]
	if len(soas) != 1 || soas[0] != "ns1.dnstest.local admin.dnstest.local 1 3600 600 86400 300" {
		t.Fatalf("apex SOA=%v", soas)
	}

	lookups := zones[Name("spf-too-many-lookups")]["TXT"][0]
	if !strings.HasPrefix(lookups, "v=spf1 ") || !strings.HasSuffix(lookups, " -all") {
		t.Fatalf("spf-too-many-lookups TXT shape: %q", lookups)
	}
	if got := strings.Count(lookups, "include:"); got != 11 {
		t.Fatalf("spf-too-many-lookups has %d includes, want 11", got)
	}

	ns := zones[Name("valid-delegation")]["NS"]
	if len(ns) != 2 || ns[0] != "ns1.valid-delegation.dnstest.local." || ns[1] != "ns2.valid-delegation.dnstest.local." {
		t.Fatalf("valid-delegation NS=%v", ns)
	}
	if got := zones["ns1.valid-delegation.dnstest.local"]["A"]; len(got) != 1 || got[0] != "192.0.2.53" {
		t.Fatalf("delegation child A=%v", got)
	}
}

func TestZones_FreshCopyPerCall(t *testing.T) {
	first := Zones()
	delete(first, TestDomain)
	first[Name("spf-valid")]["TXT"][0] = "tampered"
	first[Name("multi-a")]["A"] = append(first[Name("multi-a")]["A"], "10.0.0.1")

	second := Zones()
	if _, ok := second[TestDomain]; !ok {
		t.Fatalf("apex zone missing after earlier delete")
	}
	if got := second[Name("spf-valid")]["TXT"][0]; got == "tampered" {
		t.Fatalf("catalog shares TXT slice between calls")
	}
	if got := len(second[Name("multi-a")]["A"]); got != 3 {
		t.Fatalf("multi-a has %d values, want 3", got)
	}
}

// The catalog's conflict semantics depend on resolution behavior: an A query
// against cname-conflict must return the A record, while a type the zone
// lacks falls back to the CNAME.
func TestZones_ResolveThroughCatalog(t *testing.T) {
	store, err := zonestore.New(Zones())
	if err != nil {
		t.Fatalf("zonestore.New: %v", err)
	}
	r, err := resolver.New(resolver.Options{ZoneStore: store})
	if err != nil {
		t.Fatalf("resolver.New: %v", err)
	}
	client := &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 40000}

	q, err := domain.NewQuestion(1, Name("cname-conflict")+".", domain.RRTypeA, domain.RRClassIN)
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	resp := r.HandleQuery(context.Background(), q, client)
	if resp.RCode != domain.RCodeNoError || len(resp.Answers) != 1 || resp.Answers[0].Type != domain.RRTypeA {
		t.Fatalf("A query against cname-conflict: %+v", resp)
	}

	q, err = domain.NewQuestion(2, Name("cname-conflict")+".", domain.RRTypeMX, domain.RRClassIN)
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	resp = r.HandleQuery(context.Background(), q, client)
	if resp.RCode != domain.RCodeNoError || len(resp.Answers) != 1 || resp.Answers[0].Type != domain.RRTypeCNAME {
		t.Fatalf("MX query should fall back to CNAME: %+v", resp)
	}

	q, err = domain.NewQuestion(3, "absent."+TestDomain+".", domain.RRTypeA, domain.RRClassIN)
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	resp = r.HandleQuery(context.Background(), q, client)
	// The apex zone is an ancestor of every catalog name, so unknown hosts
	// match it and come back empty rather than NXDOMAIN.
	if resp.RCode != domain.RCodeNoError || len(resp.Answers) != 0 {
		t.Fatalf("absent host: %+v", resp)
	}

	q, err = domain.NewQuestion(4, "absent.example.org.", domain.RRTypeA, domain.RRClassIN)
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	resp = r.HandleQuery(context.Background(), q, client)
	if resp.RCode != domain.RCodeNXDomain {
		t.Fatalf("out-of-catalog name should be NXDOMAIN: %+v", resp)
	}
}
