package transport

import (
	"fmt"

	"github.com/probekit/dnslab/internal/dns/common/log"
	"github.com/probekit/dnslab/internal/dns/gateways/wire"
)

// TransportType selects a serving protocol. Only UDP is implemented.
type TransportType string

const (
	// TransportUDP is standard DNS over UDP (RFC 1035).
	TransportUDP TransportType = "udp"
)

// NewTransport creates a transport instance for the given type.
func NewTransport(transportType TransportType, addr string, codec wire.DNSCodec, logger log.Logger) (ServerTransport, error) {
	switch transportType {
	case TransportUDP:
		return NewUDPServer(addr, codec, logger), nil
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", transportType)
	}
}
