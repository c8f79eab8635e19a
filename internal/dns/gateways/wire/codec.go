package wire

import (
	"github.com/probekit/dnslab/internal/dns/domain"
)

// DNSCodec translates between wire-format UDP datagrams and domain types.
// DecodeQuery and EncodeResponse serve the listening path. EncodeQuery and
// DecodeResponse are the client half, used by tests and health checks that
// talk to the server over a real socket.
type DNSCodec interface {
	// DecodeQuery parses a query datagram into a Question. Any datagram that
	// does not contain exactly one well formed question is an error, and the
	// caller drops it without replying.
	DecodeQuery(data []byte) (domain.Question, error)

	// EncodeResponse serializes a DNSResponse, including responses with no
	// answer records (NXDOMAIN and empty NOERROR).
	EncodeResponse(resp domain.DNSResponse) ([]byte, error)

	// EncodeQuery serializes a Question into a standard recursive query.
	EncodeQuery(query domain.Question) ([]byte, error)

	// DecodeResponse parses a response datagram, verifying the message ID
	// matches expectedID.
	DecodeResponse(data []byte, expectedID uint16) (domain.DNSResponse, error)
}
