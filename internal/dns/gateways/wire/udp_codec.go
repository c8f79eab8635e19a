// Package wire provides encoding and decoding of DNS messages for UDP transport.
// It handles the DNS wire format as specified in RFC 1035.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/probekit/dnslab/internal/dns/common/log"
	"github.com/probekit/dnslab/internal/dns/common/rrdata"
	"github.com/probekit/dnslab/internal/dns/common/utils"
	"github.com/probekit/dnslab/internal/dns/domain"
)

const headerLen = 12

// responseFlags is the fixed upper half of every reply header: QR=1 and AA=1.
// Recursion is neither requested back nor offered, so RD and RA stay clear.
// The low four bits carry the response code.
const responseFlags uint16 = 0x8400

// udpCodec implements the DNSCodec interface for standard DNS over UDP messages.
type udpCodec struct {
	logger log.Logger
}

// NewUDPCodec creates a new udpCodec. A nil logger disables codec logging.
func NewUDPCodec(logger log.Logger) *udpCodec {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &udpCodec{
		logger: logger,
	}
}

// EncodeQuery serializes a Question into a binary format suitable for sending via UDP.
func (c *udpCodec) EncodeQuery(query domain.Question) ([]byte, error) {
	var buf bytes.Buffer

	// Header
	_ = binary.Write(&buf, binary.BigEndian, query.ID)       // ID
	_ = binary.Write(&buf, binary.BigEndian, uint16(0x0100)) // Flags: standard query, RD=1
	_ = binary.Write(&buf, binary.BigEndian, uint16(1))      // QDCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0))      // ANCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0))      // NSCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0))      // ARCOUNT

	// Question
	qname, err := rrdata.EncodeDomainName(query.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(qname)
	_ = binary.Write(&buf, binary.BigEndian, uint16(query.Type))
	_ = binary.Write(&buf, binary.BigEndian, uint16(query.Class))

	return buf.Bytes(), nil
}

// decodeName decodes a domain name from a DNS message at the specified offset,
// handling label compression as defined in RFC 1035.
func decodeName(data []byte, offset int) (string, int, error) {
	var labels []string
	for {
		if offset >= len(data) {
			return "", 0, errors.New("offset out of bounds")
		}
		length := int(data[offset])
		if length == 0 {
			offset++
			break
		}
		if length&0xC0 == 0xC0 {
			if offset+1 >= len(data) {
				return "", 0, errors.New("compression pointer out of bounds")
			}
			ptr := int(binary.BigEndian.Uint16(data[offset:offset+2]) & 0x3FFF)
			if ptr >= offset {
				return "", 0, errors.New("compression pointer must point backwards")
			}
			suffix, _, err := decodeName(data, ptr)
			if err != nil {
				return "", 0, err
			}
			labels = append(labels, suffix)
			offset += 2
			break
		}
		offset++
		if offset+length > len(data) {
			return "", 0, errors.New("label length out of bounds")
		}
		labels = append(labels, string(data[offset:offset+length]))
		offset += length
	}
	return strings.Join(labels, "."), offset, nil
}

// decodeQuestion parses the DNS question section starting at the given offset.
// It returns the domain name, query type, query class, and the updated offset.
func decodeQuestion(data []byte, offset int) (string, uint16, uint16, int, error) {
	name, newOffset, err := decodeName(data, offset)
	if err != nil {
		return "", 0, 0, 0, err
	}
	if newOffset+4 > len(data) {
		return "", 0, 0, 0, errors.New("truncated question fields")
	}
	qtype := binary.BigEndian.Uint16(data[newOffset : newOffset+2])
	qclass := binary.BigEndian.Uint16(data[newOffset+2 : newOffset+4])
	return name, qtype, qclass, newOffset + 4, nil
}

// DecodeQuery parses a DNS query message from data. The question name is
// canonicalized so that every later comparison against zone data is
// byte-equal regardless of how the client spelled the name.
func (c *udpCodec) DecodeQuery(data []byte) (domain.Question, error) {
	if len(data) < headerLen {
		return domain.Question{}, fmt.Errorf("query too short: %d bytes", len(data))
	}
	id := binary.BigEndian.Uint16(data[0:2])
	qdCount := binary.BigEndian.Uint16(data[4:6])
	if qdCount != 1 {
		return domain.Question{}, fmt.Errorf("expected exactly one question, got %d", qdCount)
	}
	name, qtype, qclass, _, err := decodeQuestion(data, headerLen)
	if err != nil {
		return domain.Question{}, err
	}
	q, err := domain.NewQuestion(id, utils.CanonicalDNSName(name), domain.RRType(qtype), domain.RRClass(qclass))
	if err != nil {
		return domain.Question{}, fmt.Errorf("invalid question: %w", err)
	}
	return q, nil
}

// EncodeResponse serializes a DNSResponse into a binary format suitable for
// sending via UDP. The question section is echoed from resp.Question, so
// answerless responses encode the same way as answered ones.
func (c *udpCodec) EncodeResponse(resp domain.DNSResponse) ([]byte, error) {
	var buf bytes.Buffer

	flags := responseFlags | uint16(resp.RCode)&0x000F

	_ = binary.Write(&buf, binary.BigEndian, resp.ID)
	_ = binary.Write(&buf, binary.BigEndian, flags)
	_ = binary.Write(&buf, binary.BigEndian, uint16(1)) // QDCOUNT

	// Safely convert slice length to uint16 with bounds check
	answerCount := len(resp.Answers)
	if answerCount > 65535 {
		return nil, fmt.Errorf("too many answer records: %d (max 65535)", answerCount)
	}
	_ = binary.Write(&buf, binary.BigEndian, uint16(answerCount))

	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // NSCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0)) // ARCOUNT

	// Echo the question the client asked.
	qname, err := rrdata.EncodeDomainName(resp.Question.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(qname)
	_ = binary.Write(&buf, binary.BigEndian, uint16(resp.Question.Type))
	_ = binary.Write(&buf, binary.BigEndian, uint16(resp.Question.Class))
	qnameOffset := headerLen // QNAME always starts right after the 12-byte header

	canonicalQName := utils.CanonicalDNSName(resp.Question.Name)

	// Answers
	for _, rr := range resp.Answers {
		if utils.CanonicalDNSName(rr.Name) == canonicalQName {
			// Use name compression: pointer to the QNAME we just wrote.
			// Format: 0b11xxxxxx xxxxxxxx (pointer to offset in message)
			buf.Write([]byte{0xC0 | byte(qnameOffset>>8), byte(qnameOffset & 0xFF)})
		} else {
			name, err := rrdata.EncodeDomainName(rr.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
		}
		_ = binary.Write(&buf, binary.BigEndian, uint16(rr.Type))
		_ = binary.Write(&buf, binary.BigEndian, uint16(rr.Class))
		_ = binary.Write(&buf, binary.BigEndian, rr.TTL)

		// Safely convert data length to uint16 with bounds check
		dataLen := len(rr.Data)
		if dataLen > 65535 {
			return nil, fmt.Errorf("resource record data too large: %d bytes (max 65535)", dataLen)
		}
		_ = binary.Write(&buf, binary.BigEndian, uint16(dataLen))

		buf.Write(rr.Data)
	}

	c.logger.Debug(map[string]any{
		"id":    resp.ID,
		"rcode": resp.RCode.String(),
		"an":    answerCount,
		"size":  buf.Len(),
	}, "Encoded DNS response")

	return buf.Bytes(), nil
}

// DecodeResponse parses a raw DNS response from a UDP packet into a
// DNSResponse, validating the response ID and extracting answer records.
// Authority and additional sections are ignored; fixture responses never
// carry them.
func (c *udpCodec) DecodeResponse(data []byte, expectedID uint16) (domain.DNSResponse, error) {
	if len(data) < headerLen {
		return domain.DNSResponse{}, errors.New("response too short")
	}
	id := binary.BigEndian.Uint16(data[0:2])
	if id != expectedID {
		return domain.DNSResponse{}, fmt.Errorf("ID mismatch: expected %d, got %d", expectedID, id)
	}

	// Parse flags to extract RCode (lower 4 bits of byte 3)
	flags := binary.BigEndian.Uint16(data[2:4])
	rcode := domain.RCode(flags & 0x000F)

	qdCount := binary.BigEndian.Uint16(data[4:6])
	anCount := binary.BigEndian.Uint16(data[6:8])

	if qdCount == 0 {
		return domain.DNSResponse{}, errors.New("response carries no question section")
	}

	offset := headerLen
	var question domain.Question
	for i := 0; i < int(qdCount); i++ {
		name, qtype, qclass, newOffset, err := decodeQuestion(data, offset)
		if err != nil {
			return domain.DNSResponse{}, fmt.Errorf("failed to parse question %d: %w", i, err)
		}
		if i == 0 {
			question = domain.Question{
				ID:    id,
				Name:  utils.CanonicalDNSName(name),
				Type:  domain.RRType(qtype),
				Class: domain.RRClass(qclass),
			}
		}
		offset = newOffset
	}

	answers := make([]domain.ResourceRecord, 0, anCount)
	for i := 0; i < int(anCount); i++ {
		rr, newOffset, err := c.parseResourceRecord(data, offset)
		if err != nil {
			return domain.DNSResponse{}, fmt.Errorf("failed to parse answer record %d: %w", i, err)
		}
		answers = append(answers, rr)
		offset = newOffset
	}

	return domain.DNSResponse{
		ID:       id,
		RCode:    rcode,
		Question: question,
		Answers:  answers,
	}, nil
}

// parseResourceRecord extracts a single resource record from DNS response data.
func (c *udpCodec) parseResourceRecord(data []byte, offset int) (domain.ResourceRecord, int, error) {
	name, newOffset, err := decodeName(data, offset)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("failed to decode record name: %w", err)
	}
	offset = newOffset

	if offset+10 > len(data) {
		return domain.ResourceRecord{}, 0, errors.New("truncated record section after name")
	}

	typ := binary.BigEndian.Uint16(data[offset : offset+2])
	offset += 2
	class := binary.BigEndian.Uint16(data[offset : offset+2])
	offset += 2
	ttl := binary.BigEndian.Uint32(data[offset : offset+4])
	offset += 4
	rdLen := binary.BigEndian.Uint16(data[offset : offset+2])
	offset += 2

	if offset+int(rdLen) > len(data) {
		return domain.ResourceRecord{}, 0, errors.New("truncated rdata")
	}
	rdata := make([]byte, rdLen)
	copy(rdata, data[offset:offset+int(rdLen)])
	offset += int(rdLen)

	rrtype := domain.RRType(typ)
	rrclass := domain.RRClass(class)

	// Presentation text is best effort; RDATA from other servers may use
	// compression this package's decoders do not follow.
	text, err := rrdata.Decode(rrtype, rdata)
	if err != nil {
		text = ""
	}

	rr, err := domain.NewResourceRecord(name, rrtype, rrclass, ttl, rdata, text)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("invalid resource record: %w", err)
	}

	return rr, offset, nil
}

var _ DNSCodec = &udpCodec{}
