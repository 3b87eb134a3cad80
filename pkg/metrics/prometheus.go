package metrics

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dbehnke/dsd-go/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusConfig holds Prometheus server configuration.
type PrometheusConfig struct {
	Enabled bool
	Port    int
	Path    string
}

// PrometheusServer is an HTTP server exposing a Registry's metrics in
// Prometheus text exposition format via the real client_golang
// promhttp handler, replacing a hand-rolled text builder with the
// same registration-based exposition every client_golang consumer
// uses.
type PrometheusServer struct {
	config PrometheusConfig
	reg    *Registry
	log    *logger.Logger
	server *http.Server
}

// NewPrometheusServer creates a new Prometheus metrics server for the
// given registry.
func NewPrometheusServer(config PrometheusConfig, reg *Registry, log *logger.Logger) *PrometheusServer {
	if log == nil {
		log = logger.New(logger.Config{Level: "info", Format: "text"})
	}
	return &PrometheusServer{
		config: config,
		reg:    reg,
		log:    log.WithComponent("metrics"),
	}
}

// Start runs the metrics server until ctx is cancelled.
func (s *PrometheusServer) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.log.Info("Prometheus metrics server disabled")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(s.config.Path, promhttp.HandlerFor(s.reg.Prometheus(), promhttp.HandlerOpts{}))

	addr := fmt.Sprintf(":%d", s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	actualPort := listener.Addr().(*net.TCPAddr).Port

	s.server = &http.Server{Handler: mux}

	s.log.Info("Starting Prometheus metrics server",
		logger.Int("port", actualPort),
		logger.String("path", s.config.Path))

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("Shutting down Prometheus metrics server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown error: %w", err)
		}
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}

// Stop stops the Prometheus metrics server.
func (s *PrometheusServer) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.server.Shutdown(ctx)
	}
}
