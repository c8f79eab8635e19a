package rrdata

import (
	"fmt"
	"net"
	"strings"

	"github.com/probekit/dnslab/internal/dns/common/utils"
)

// EncodeDomainName encodes a domain name into wire format (length-prefixed
// labels ending in a zero byte). Shared by every record type that embeds a
// name, and by the question section of the wire codec.
func EncodeDomainName(name string) ([]byte, error) {
	name = utils.PresentationDNSName(utils.CanonicalDNSName(name))
	labels := strings.Split(name, ".")
	var encoded []byte
	for _, label := range labels {
		if len(label) == 0 {
			continue
		}
		if len(label) > 63 {
			return nil, fmt.Errorf("label too long: %s", label)
		}
		encoded = append(encoded, byte(len(label)))
		encoded = append(encoded, label...)
	}
	encoded = append(encoded, 0) // null terminator
	return encoded, nil
}

// DecodeDomainName decodes a length-prefixed label sequence back to
// presentation form. It does not follow compression pointers; RDATA produced
// by this package never contains them.
func DecodeDomainName(b []byte) (string, error) {
	var labels []string
	for i := 0; i < len(b); {
		labelLen := int(b[i])
		if labelLen == 0 {
			break
		}
		i++
		if i+labelLen > len(b) {
			return "", fmt.Errorf("invalid domain name encoding")
		}
		labels = append(labels, string(b[i:i+labelLen]))
		i += labelLen
	}
	return strings.Join(labels, "."), nil
}

// wireNameLen returns the encoded length of a presentation-form name,
// including the leading length byte and trailing zero.
func wireNameLen(name string) int {
	if name == "" {
		return 1
	}
	return len(name) + 2
}

// isIPv4 checks whether the provided net.IP address is an IPv4 address.
func isIPv4(ip net.IP) bool {
	return ip != nil && ip.To4() != nil
}

// isIPv6 checks whether the provided net.IP is a valid IPv6 address, meaning
// it has a 16-byte form and no 4-byte form.
func isIPv6(ip net.IP) bool {
	return ip != nil && ip.To16() != nil && ip.To4() == nil
}
