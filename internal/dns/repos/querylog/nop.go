package querylog

import (
	"github.com/probekit/dnslab/internal/dns/domain"
	"github.com/probekit/dnslab/internal/dns/services/resolver"
)

// NoopLog discards every event. It stands in when query logging is disabled.
type NoopLog struct{}

func (n *NoopLog) Append(domain.QueryEvent) error { return nil }

func (n *NoopLog) Recent(int) []domain.QueryEvent { return nil }

func (n *NoopLog) Len() int { return 0 }

func (n *NoopLog) Close() error { return nil }

var _ Log = (*NoopLog)(nil)
var _ resolver.QueryLog = (*NoopLog)(nil)
