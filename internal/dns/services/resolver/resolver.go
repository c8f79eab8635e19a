package resolver

import (
	"context"
	"fmt"
	"net"

	"github.com/probekit/dnslab/internal/dns/common/clock"
	"github.com/probekit/dnslab/internal/dns/common/log"
	"github.com/probekit/dnslab/internal/dns/common/rrdata"
	"github.com/probekit/dnslab/internal/dns/common/utils"
	"github.com/probekit/dnslab/internal/dns/domain"
)

// answerTTL is stamped on every synthesized answer. The fixture serves static
// data, so a single TTL keeps responses reproducible across runs.
const answerTTL uint32 = 300

// Resolver answers questions from the fixture zones. Resolution gaps are
// responses (NXDOMAIN or an empty NOERROR), never errors, so HandleQuery
// always produces something the codec can encode.
type Resolver struct {
	zones  ZoneStore
	qlog   QueryLog
	clock  clock.Clock
	logger log.Logger
}

// Options carries the collaborators for New. ZoneStore is required; the rest
// default to a real clock, a noop logger, and no query logging.
type Options struct {
	ZoneStore ZoneStore
	QueryLog  QueryLog
	Clock     clock.Clock
	Logger    log.Logger
}

// New constructs a Resolver.
func New(opts Options) (*Resolver, error) {
	if opts.ZoneStore == nil {
		return nil, fmt.Errorf("resolver requires a zone store")
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Resolver{
		zones:  opts.ZoneStore,
		qlog:   opts.QueryLog,
		clock:  opts.Clock,
		logger: opts.Logger,
	}, nil
}

// HandleQuery resolves a single question:
//
//  1. Exact zone match on the canonicalized name, else the nearest defined
//     ancestor (delegation behavior), else NXDOMAIN.
//  2. Records of the queried type answer directly. If the matched zone has
//     none but defines CNAME records, those answer instead, one hop, no
//     chasing of the target.
//  3. Values that fail wire encoding are skipped individually; the rest of
//     the response stands.
//
// Answers are always owned by the name that was asked, even when an ancestor
// zone supplied the data.
func (r *Resolver) HandleQuery(ctx context.Context, q domain.Question, clientAddr net.Addr) domain.DNSResponse {
	qname := utils.CanonicalDNSName(q.Name)

	zone, found := r.findZone(qname)
	if !found {
		r.logger.Debug(map[string]any{
			"query_id": q.ID,
			"name":     qname,
			"type":     q.Type.String(),
		}, "No zone matches query or any ancestor")
		return r.observe(q, clientAddr, domain.NewErrorResponse(q, domain.RCodeNXDomain))
	}

	rrtype := q.Type
	values := zone.Records(rrtype)
	if len(values) == 0 && zone.HasRecords(domain.RRTypeCNAME) {
		// single-hop alias fallback: answer with the CNAME itself and stop
		rrtype = domain.RRTypeCNAME
		values = zone.Records(rrtype)
	}

	answers := r.synthesize(qname, rrtype, values)

	resp, err := domain.NewDNSResponse(q, answers)
	if err != nil {
		r.logger.Error(map[string]any{
			"query_id": q.ID,
			"name":     qname,
			"error":    err.Error(),
		}, "Failed to assemble DNS response")
		return r.observe(q, clientAddr, domain.NewErrorResponse(q, domain.RCodeServFail))
	}

	r.logger.Debug(map[string]any{
		"query_id": q.ID,
		"name":     qname,
		"type":     q.Type.String(),
		"zone":     zone.Name,
		"answers":  len(answers),
	}, "Resolved query from fixture zones")

	return r.observe(q, clientAddr, resp)
}

// findZone looks for an exact zone match first, then walks the ancestor
// chain from the immediate parent toward (but never reaching) the root.
func (r *Resolver) findZone(qname string) (domain.Zone, bool) {
	if zone, ok := r.zones.Lookup(qname); ok {
		return zone, true
	}
	for _, ancestor := range utils.AncestorNames(qname) {
		if zone, ok := r.zones.Lookup(ancestor); ok {
			return zone, true
		}
	}
	return domain.Zone{}, false
}

// synthesize builds wire-ready answer records owned by the queried name.
// Malformed values are dropped one by one so a single bad record never takes
// down the rest of the response.
func (r *Resolver) synthesize(owner string, rrtype domain.RRType, values []string) []domain.ResourceRecord {
	if len(values) == 0 {
		return nil
	}
	answers := make([]domain.ResourceRecord, 0, len(values))
	for _, value := range values {
		data, err := rrdata.Encode(rrtype, value)
		if err != nil {
			r.logger.Debug(map[string]any{
				"name":  owner,
				"type":  rrtype.String(),
				"value": value,
				"error": err.Error(),
			}, "Skipping malformed record value")
			continue
		}
		rr, err := domain.NewResourceRecord(owner, rrtype, domain.RRClassIN, answerTTL, data, value)
		if err != nil {
			r.logger.Debug(map[string]any{
				"name":  owner,
				"type":  rrtype.String(),
				"error": err.Error(),
			}, "Skipping invalid record")
			continue
		}
		answers = append(answers, rr)
	}
	return answers
}

// observe appends a query log entry for the response about to be sent.
func (r *Resolver) observe(q domain.Question, clientAddr net.Addr, resp domain.DNSResponse) domain.DNSResponse {
	if r.qlog == nil {
		return resp
	}
	client := ""
	if clientAddr != nil {
		client = clientAddr.String()
	}
	event := domain.QueryEvent{
		Time:    r.clock.Now(),
		Client:  client,
		Name:    utils.CanonicalDNSName(q.Name),
		Type:    q.Type,
		RCode:   resp.RCode,
		Answers: resp.AnswerCount(),
	}
	if err := r.qlog.Append(event); err != nil {
		r.logger.Warn(map[string]any{
			"name":  event.Name,
			"error": err.Error(),
		}, "Failed to append query log entry")
	}
	return resp
}
