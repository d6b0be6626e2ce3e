package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/bytes"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/scopedemo/internal/adapter/metrics"
	"github.com/pscheid92/scopedemo/internal/platform/config"
	"github.com/pscheid92/scopedemo/internal/routing"
	"github.com/pscheid92/scopedemo/internal/state"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config
	router *routing.Router

	identity state.Identity
	counter  *state.Counter

	registry    *prometheus.Registry
	httpMetrics *metrics.HTTPMetrics

	clock        clockwork.Clock
	healthChecks []HealthCheck
	startTime    time.Time
}

type Option func(*Server)

func WithClock(clock clockwork.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// WithHealthChecks registers readiness checks. None are configured by default.
func WithHealthChecks(checks ...HealthCheck) Option {
	return func(s *Server) { s.healthChecks = append(s.healthChecks, checks...) }
}

func NewServer(cfg *config.Config, identity state.Identity, counter *state.Counter, opts ...Option) (*Server, error) {
	if counter == nil {
		return nil, errors.New("request counter is required")
	}
	if _, err := bytes.Parse(cfg.BodyLimit); err != nil {
		return nil, fmt.Errorf("invalid body limit %q: %w", cfg.BodyLimit, err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:     e,
		config:   cfg,
		router:   routing.New(e),
		identity: identity,
		counter:  counter,
		clock:    clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	if srv.registry == nil {
		srv.registry = metrics.NewRegistry()
	}
	srv.httpMetrics = metrics.NewHTTPMetrics(srv.registry)
	metrics.NewCounterMetrics(srv.registry, counter)
	srv.startTime = srv.clock.Now()

	srv.registerRoutes()

	return srv, nil
}

// Handler exposes the fully wired handler, mainly for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	slog.Info("Starting server", "addr", s.config.Addr())
	if err := s.echo.Start(s.config.Addr()); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
