package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/probekit/dnslab/internal/dns/common/clock"
	"github.com/probekit/dnslab/internal/dns/common/log"
	"github.com/probekit/dnslab/internal/dns/config"
	"github.com/probekit/dnslab/internal/dns/gateways/transport"
	"github.com/probekit/dnslab/internal/dns/gateways/wire"
	"github.com/probekit/dnslab/internal/dns/repos/querylog"
	"github.com/probekit/dnslab/internal/dns/repos/querylog/bolt"
	"github.com/probekit/dnslab/internal/dns/repos/querylog/memory"
	"github.com/probekit/dnslab/internal/dns/repos/zone"
	"github.com/probekit/dnslab/internal/dns/repos/zonestore"
	"github.com/probekit/dnslab/internal/dns/services/resolver"
	"github.com/probekit/dnslab/internal/eval/fixtures"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "dnslabd"

	// Default timeouts
	defaultShutdownTimeout = 10 * time.Second
)

// Application holds all the components of the DNS lab server
type Application struct {
	config    *config.AppConfig
	transport transport.ServerTransport
	resolver  *resolver.Resolver
	qlog      querylog.Log
}

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Configure global logging
	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"app":            appName,
		"version":        version,
		"env":            cfg.Env,
		"log_level":      cfg.LogLevel,
		"host":           cfg.Host,
		"port":           cfg.Port,
		"zone_dir":       cfg.ZoneDir,
		"query_log_size": cfg.QueryLogSize,
		"query_log_path": cfg.QueryLogPath,
	}, "Starting DNS lab server")

	// Build application with all dependencies
	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info(map[string]any{"signal": sig.String()}, "Shutdown signal received")
		cancel()
	}()

	// Start the DNS lab server
	if err := app.Run(ctx); err != nil {
		log.Fatal(map[string]any{"error": err}, "Server failed")
	}

	log.Info(nil, "DNS lab server stopped gracefully")
}

// buildApplication constructs all components and wires them together
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	// Create shared clock for consistent time across all components
	clk := &clock.RealClock{}

	// Initialize logger (already configured globally)
	logger := log.GetLogger()

	// Create DNS wire codec
	codec := wire.NewUDPCodec(logger)

	// Build repository layer
	repos, err := buildRepositories(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build repositories: %w", err)
	}

	// Build service layer
	resolverService, err := resolver.New(resolver.Options{
		ZoneStore: repos.zones,
		QueryLog:  repos.qlog,
		Clock:     clk,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver: %w", err)
	}

	// Build transport layer
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	srv, err := transport.NewTransport(transport.TransportUDP, addr, codec, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	return &Application{
		config:    cfg,
		transport: srv,
		resolver:  resolverService,
		qlog:      repos.qlog,
	}, nil
}

// repositories holds all repository implementations
type repositories struct {
	zones *zonestore.Store
	qlog  querylog.Log
}

// buildRepositories creates and configures all repository implementations
func buildRepositories(cfg *config.AppConfig) (*repositories, error) {
	// Load zones from the configured directory, or fall back to the
	// built-in scenario catalog.
	var raw zonestore.RawZones
	var err error
	if cfg.ZoneDir != "" {
		raw, err = zone.LoadDirectory(cfg.ZoneDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load zone directory: %w", err)
		}
	} else {
		raw = fixtures.Zones()
	}

	store, err := zonestore.New(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to build zone store: %w", err)
	}

	if cfg.ZoneDir != "" {
		log.Info(map[string]any{
			"zone_dir": cfg.ZoneDir,
			"zones":    store.Len(),
			"records":  store.RecordCount(),
		}, "Zone store initialized")
	} else {
		log.Info(map[string]any{
			"zones":     store.Len(),
			"scenarios": len(fixtures.ScenarioNames()),
		}, "Serving built-in scenario catalog")
	}

	// Create the query log: persistent when a path is configured, bounded
	// in-memory otherwise, disabled at size zero.
	var qlog querylog.Log
	if cfg.QueryLogPath != "" {
		qlog, err = bolt.New(cfg.QueryLogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open query log database: %w", err)
		}
		log.Info(map[string]any{"path": cfg.QueryLogPath}, "Query log persisted to disk")
	} else {
		qlog, err = memory.New(cfg.QueryLogSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create query log: %w", err)
		}
		if cfg.QueryLogSize > 0 {
			log.Info(map[string]any{"size": cfg.QueryLogSize}, "Query log kept in memory")
		} else {
			log.Info(nil, "Query logging disabled")
		}
	}

	return &repositories{
		zones: store,
		qlog:  qlog,
	}, nil
}

// Run starts the DNS lab server and blocks until context is cancelled
func (app *Application) Run(ctx context.Context) error {
	// Start UDP transport
	if err := app.transport.Start(ctx, app.resolver); err != nil {
		return fmt.Errorf("failed to start UDP transport: %w", err)
	}

	log.Info(map[string]any{
		"address":   app.transport.Address(),
		"transport": "UDP",
	}, "DNS lab server started")

	if app.config.ZoneDir == "" {
		log.Info(map[string]any{
			"example": fmt.Sprintf("dig @%s -p %d %s TXT", app.config.Host, app.config.Port, fixtures.Name("spf-valid")),
		}, "Scenario catalog ready for queries")
	}

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info(nil, "Shutdown initiated")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	// Stop transport gracefully
	if err := app.transport.Stop(); err != nil {
		log.Warn(map[string]any{"error": err}, "Error during transport shutdown")
	}

	// Wait for cleanup completion or timeout
	done := make(chan struct{})
	go func() {
		if err := app.qlog.Close(); err != nil {
			log.Warn(map[string]any{"error": err}, "Error closing query log")
		}
		close(done)
	}()

	select {
	case <-done:
		log.Info(nil, "Graceful shutdown completed")
		return nil
	case <-shutdownCtx.Done():
		log.Warn(map[string]any{"timeout": defaultShutdownTimeout}, "Shutdown timeout exceeded")
		return fmt.Errorf("shutdown timeout")
	}
}
