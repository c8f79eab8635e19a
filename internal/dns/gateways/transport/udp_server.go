package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/probekit/dnslab/internal/dns/common/log"
	"github.com/probekit/dnslab/internal/dns/gateways/wire"
)

const (
	// maxUDPPacketSize is the standard DNS UDP packet size limit.
	maxUDPPacketSize = 512

	// defaultReadTimeout bounds each socket read so the serve loop can
	// notice a stop request between datagrams.
	defaultReadTimeout = 500 * time.Millisecond

	// defaultJoinTimeout bounds how long Stop waits for the serve loop to
	// drain before closing the socket out from under it.
	defaultJoinTimeout = 2 * time.Second
)

// UDPServer implements ServerTransport for standard DNS over UDP (RFC 1035).
// It handles socket management, packet reception and transmission, and wire
// format conversion, delegating DNS logic to the query handler.
//
// Queries are handled strictly one at a time, in arrival order. The fixture
// exists to give probes reproducible transcripts, and serializing the
// handling keeps the query log ordering exact.
type UDPServer struct {
	addr   string
	conn   *net.UDPConn
	codec  wire.DNSCodec
	logger log.Logger

	readTimeout time.Duration
	joinTimeout time.Duration

	mu     sync.RWMutex
	state  State
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewUDPServer creates a new UDP server transport. A nil logger disables
// transport logging.
func NewUDPServer(addr string, codec wire.DNSCodec, logger log.Logger) *UDPServer {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &UDPServer{
		addr:        addr,
		codec:       codec,
		logger:      logger,
		state:       StateStopped,
		readTimeout: defaultReadTimeout,
		joinTimeout: defaultJoinTimeout,
	}
}

// Start binds the UDP socket and launches the serve loop. Calling Start on a
// server that is not stopped is a no-op.
func (s *UDPServer) Start(ctx context.Context, handler QueryHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStopped {
		s.logger.Debug(map[string]any{
			"state": s.state.String(),
		}, "Ignoring Start; server is not stopped")
		return nil
	}
	if handler == nil {
		return errors.New("query handler must not be nil")
	}

	s.state = StateStarting

	udpAddr, err := net.ResolveUDPAddr("udp", s.addr)
	if err != nil {
		s.state = StateStopped
		return fmt.Errorf("failed to resolve UDP address %s: %w", s.addr, err)
	}

	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		s.state = StateStopped
		return fmt.Errorf("failed to bind UDP socket on %s: %w", s.addr, err)
	}

	s.conn = conn
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.state = StateRunning

	s.logger.Info(map[string]any{
		"transport": "udp",
		"address":   conn.LocalAddr().String(),
	}, "DNS server listening")

	go s.serve(ctx, handler, conn, s.stopCh, s.doneCh)

	return nil
}

// Stop shuts the server down. It signals the serve loop, waits up to the
// join timeout for it to drain, then closes the socket unconditionally.
// Calling Stop on a server that is not running is a no-op.
func (s *UDPServer) Stop() error {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return nil
	}
	s.state = StateStopping
	close(s.stopCh)
	conn := s.conn
	doneCh := s.doneCh
	s.mu.Unlock()

	select {
	case <-doneCh:
	case <-time.After(s.joinTimeout):
		s.logger.Warn(map[string]any{
			"timeout": s.joinTimeout.String(),
		}, "Serve loop did not exit before timeout; closing socket anyway")
	}

	var closeErr error
	if conn != nil {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			closeErr = err
			s.logger.Warn(map[string]any{
				"error": err.Error(),
			}, "Error closing UDP connection")
		}
	}

	s.mu.Lock()
	s.state = StateStopped
	s.mu.Unlock()

	s.logger.Info(map[string]any{
		"transport": "udp",
		"address":   s.addr,
	}, "DNS server stopped")

	return closeErr
}

// Run binds the socket, serves until the context is cancelled, and stops.
// It is the scoped form of Start/Stop for callers that tie the server's
// lifetime to a context.
func (s *UDPServer) Run(ctx context.Context, handler QueryHandler) error {
	if err := s.Start(ctx, handler); err != nil {
		return err
	}
	<-ctx.Done()
	return s.Stop()
}

// Address returns the bound listen address once started, or the configured
// address before that.
func (s *UDPServer) Address() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.conn != nil {
		return s.conn.LocalAddr().String()
	}
	return s.addr
}

// State returns the current lifecycle state.
func (s *UDPServer) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// serve reads datagrams until told to stop. Each read is bounded by the
// read timeout so stop requests are noticed promptly. The loop parameters
// are passed in rather than read from the struct so a later restart cannot
// race with a loop that outlived its join timeout.
func (s *UDPServer) serve(ctx context.Context, handler QueryHandler, conn *net.UDPConn, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	buffer := make([]byte, maxUDPPacketSize)
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug(nil, "UDP server stopping due to context cancellation")
			return
		case <-stopCh:
			s.logger.Debug(nil, "UDP server stopping due to stop signal")
			return
		default:
		}

		if err := conn.SetReadDeadline(time.Now().Add(s.readTimeout)); err != nil {
			s.logger.Warn(map[string]any{
				"error": err.Error(),
			}, "Failed to set read deadline")
		}

		n, clientAddr, err := conn.ReadFromUDP(buffer)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if errors.Is(err, net.ErrClosed) || s.State() != StateRunning {
				return
			}
			s.logger.Warn(map[string]any{
				"error": err.Error(),
			}, "Failed to read UDP packet")
			continue
		}

		packet := make([]byte, n)
		copy(packet, buffer[:n])

		// One datagram at a time, in arrival order.
		s.handlePacket(ctx, packet, clientAddr, conn, handler)
	}
}

// handlePacket processes a single UDP DNS packet.
func (s *UDPServer) handlePacket(ctx context.Context, data []byte, clientAddr *net.UDPAddr, conn *net.UDPConn, handler QueryHandler) {
	query, err := s.codec.DecodeQuery(data)
	if err != nil {
		// Undecodable datagrams are dropped without a reply.
		s.logger.Warn(map[string]any{
			"client": clientAddr.String(),
			"error":  err.Error(),
			"size":   len(data),
		}, "Failed to decode DNS query")
		return
	}

	s.logger.Debug(map[string]any{
		"client":   clientAddr.String(),
		"query_id": query.ID,
		"name":     query.Name,
		"type":     query.Type.String(),
	}, "Received DNS query")

	response := handler.HandleQuery(ctx, query, clientAddr)

	responseData, err := s.codec.EncodeResponse(response)
	if err != nil {
		s.logger.Error(map[string]any{
			"client":   clientAddr.String(),
			"query_id": query.ID,
			"error":    err.Error(),
		}, "Failed to encode DNS response")
		return
	}

	if _, err := conn.WriteToUDP(responseData, clientAddr); err != nil {
		s.logger.Error(map[string]any{
			"client":   clientAddr.String(),
			"query_id": response.ID,
			"error":    err.Error(),
		}, "Failed to send DNS response")
		return
	}

	s.logger.Debug(map[string]any{
		"client":   clientAddr.String(),
		"query_id": response.ID,
		"rcode":    response.RCode.String(),
		"answers":  response.AnswerCount(),
		"size":     len(responseData),
	}, "Sent DNS response")
}

var _ ServerTransport = (*UDPServer)(nil)
