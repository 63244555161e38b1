// Package rest exposes the auth service over HTTP/JSON.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/vineauth/internal/logging"
	"github.com/dmitrijs2005/vineauth/internal/server/config"
	"github.com/dmitrijs2005/vineauth/internal/server/models"
	"github.com/dmitrijs2005/vineauth/internal/server/services"
	"github.com/dmitrijs2005/vineauth/internal/timex"
	"github.com/prometheus/client_golang/prometheus"
)

// UserService is the business logic the handlers delegate to.
// *services.UserService satisfies it.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	ForgotPassword(ctx context.Context, email string) (*services.ResetTask, error)
}

type Server struct {
	address         string
	prefix          string
	users           UserService
	logger          logging.Logger
	jwtSecret       []byte
	shutdownTimeout time.Duration
	registry        *prometheus.Registry
	metrics         *Metrics
}

func NewServer(cfg *config.Config, l logging.Logger, us UserService) *Server {
	registry := prometheus.NewRegistry()
	return &Server{
		address:         cfg.EndpointAddrHTTP,
		prefix:          strings.TrimRight(cfg.RoutePrefix, "/"),
		users:           us,
		logger:          l.With("module", "http_server"),
		jwtSecret:       []byte(cfg.SecretKey),
		shutdownTimeout: cfg.ShutdownTimeout,
		registry:        registry,
		metrics:         NewMetrics(registry),
	}
}

// Handler builds the routed handler with request logging and metrics applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST "+s.prefix+"/createuser", s.handleCreateUser)
	mux.HandleFunc("POST "+s.prefix+"/login", s.handleLogin)
	mux.Handle("POST "+s.prefix+"/getuser", s.requireAuth(http.HandlerFunc(s.handleGetUser)))
	mux.HandleFunc("POST "+s.prefix+"/forgotpassword", s.handleForgotPassword)

	mux.Handle("GET /metrics", s.metricsHandler())
	mux.HandleFunc("GET /healthz", handleHealth)

	return s.withRequestLog(mux)
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	drainCtx, cancel := timex.GraceContext(ctx, s.shutdownTimeout)
	defer cancel()
	return s.Serve(ctx, drainCtx)
}

// Serve is Run with the drain deadline owned by the caller: once ctx is
// cancelled, in-flight requests are drained until drainCtx ends.
func (s *Server) Serve(ctx, drainCtx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		stopped <- srv.Shutdown(drainCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
