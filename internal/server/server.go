package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/menumap/cmd/application"
	"github.com/agentstation/menumap/pkg/menus"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	app       application.Application
	dataset   *menus.Dataset
	logger    *zerolog.Logger
	config    Config
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// New creates a new server instance with the given configuration.
// The dataset is loaded here, so a StartupError surfaces before any
// listener is opened.
func New(app application.Application, cfg Config) (*Server, error) {
	logger := app.Logger()

	logger.Debug().Msg("Creating new server instance")

	cfg.PathPrefix = normalizePrefix(cfg.PathPrefix)
	if cfg.ListMode == "" {
		cfg.ListMode = DefaultConfig().ListMode
	}

	dataset, err := app.Dataset()
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("source", dataset.Source()).
		Str("layout", dataset.Layout().String()).
		Int("restaurants", dataset.Len()).
		Msg("Dataset loaded")
	if dups := dataset.DuplicateNames(); len(dups) > 0 {
		logger.Warn().
			Strs("names", dups).
			Msg("Restaurant names repeat; name lookups resolve to the first occurrence")
	}

	// Background services (rate limiter sweeps) stop when this is cancelled
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		app:       app,
		dataset:   dataset,
		logger:    logger,
		config:    cfg,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}, nil
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// HTTPServer returns an *http.Server bound to the configured address and timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}
}

// Addr returns the host:port the server listens on.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Shutdown stops background services.
func (s *Server) Shutdown(_ context.Context) error {
	s.logger.Debug().Msg("Stopping server background services")
	s.cancel()
	return nil
}

// Dataset returns the dataset the server answers from.
func (s *Server) Dataset() *menus.Dataset {
	return s.dataset
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}

// normalizePrefix returns "" or a path with one leading slash and no trailing slash.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
