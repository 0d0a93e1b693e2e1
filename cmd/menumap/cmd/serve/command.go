// Package serve provides the HTTP server command for the menumap CLI.
package serve

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/menumap/cmd/application"
	"github.com/agentstation/menumap/internal/cmd/emoji"
	"github.com/agentstation/menumap/internal/server"
	"github.com/agentstation/menumap/internal/server/handlers"
	"github.com/agentstation/menumap/pkg/constants"
)

// portEnvVars override --port, first match wins.
var portEnvVars = []string{"PORT", "HTTP_PORT"}

// NewCommand creates the serve command. defaults supplies the configuration
// from the config file and environment that flags are layered on.
func NewCommand(app application.Application, defaults func() server.Config) *cobra.Command {
	base := server.DefaultConfig()

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		GroupID: "core",
		Short:   "Start the restaurant menu API server",
		Long: `Start the read-only restaurant menu API.

Endpoints:
  GET /restaurants               list restaurants (?id=N for one)
  GET /restaurants/{key}/menu    menu of a restaurant by id or exact name
  GET /docs                      Swagger UI
  GET /openapi.json, .yaml       OpenAPI document
  GET /health, /ready            liveness and readiness

The dataset is loaded before the listener opens; a dataset that fails to
load stops the process with a non-zero exit status.`,
		Example: `  # Start on the default port 3000
  menumap serve --data ./data/restaurant_menu_data.json

  # Serve under a prefix with summaries only
  menumap serve --prefix /api --list-mode summary

  # Restrict CORS and enable rate limiting
  menumap serve --cors-origins https://example.com --rate-limit 60`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := parseConfig(cmd, defaults())
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), app, cfg)
		},
	}

	modes := make([]string, len(handlers.ListModes))
	for i, m := range handlers.ListModes {
		modes[i] = string(m)
	}

	cmd.Flags().Int("port", base.Port, "Server port (PORT env var overrides)")
	cmd.Flags().String("host", base.Host, "Bind address")
	cmd.Flags().String("prefix", base.PathPrefix, "API path prefix")
	cmd.Flags().String("list-mode", string(base.ListMode), "shape of GET /restaurants: "+strings.Join(modes, ", "))

	cmd.Flags().Bool("cors", base.CORSEnabled, "Enable CORS")
	cmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated, default all)")

	cmd.Flags().Int("rate-limit", base.RateLimit, "Requests per minute per IP (0 to disable)")
	cmd.Flags().Bool("trust-proxy", base.TrustProxy, "Rate limit by X-Forwarded-For (only behind a proxy that sets it)")

	cmd.Flags().Duration("read-timeout", base.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", base.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", base.IdleTimeout, "HTTP idle timeout")

	return cmd
}

// runServer builds the server and blocks until ctx is cancelled.
func runServer(ctx context.Context, app application.Application, cfg server.Config) error {
	logger := app.Logger()

	logger.Info().
		Int("port", cfg.Port).
		Str("host", cfg.Host).
		Str("prefix", cfg.PathPrefix).
		Str("list_mode", string(cfg.ListMode)).
		Bool("cors", cfg.CORSEnabled).
		Int("rate_limit", cfg.RateLimit).
		Msg("Starting API server")

	srv, err := server.New(app, cfg)
	if err != nil {
		return err
	}

	httpServer := srv.HTTPServer()
	logger.Debug().
		Str("addr", httpServer.Addr).
		Dur("read_timeout", cfg.ReadTimeout).
		Dur("write_timeout", cfg.WriteTimeout).
		Dur("idle_timeout", cfg.IdleTimeout).
		Msg("Creating HTTP server")

	return startWithGracefulShutdown(ctx, httpServer, srv, logger)
}

// parseConfig layers changed flags, then the port and host environment
// variables, over base.
func parseConfig(cmd *cobra.Command, base server.Config) (server.Config, error) {
	cfg := base
	flags := cmd.Flags()

	if flags.Changed("port") {
		cfg.Port = mustGetInt(cmd, "port")
	}
	if flags.Changed("host") {
		cfg.Host = mustGetString(cmd, "host")
	}
	if flags.Changed("prefix") {
		cfg.PathPrefix = mustGetString(cmd, "prefix")
	}
	if flags.Changed("list-mode") {
		cfg.ListMode = handlers.ListMode(mustGetString(cmd, "list-mode"))
	}
	if flags.Changed("cors") {
		cfg.CORSEnabled = mustGetBool(cmd, "cors")
	}
	if flags.Changed("cors-origins") {
		cfg.CORSOrigins = mustGetStringSlice(cmd, "cors-origins")
		cfg.CORSEnabled = true
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = mustGetInt(cmd, "rate-limit")
	}
	if flags.Changed("trust-proxy") {
		cfg.TrustProxy = mustGetBool(cmd, "trust-proxy")
	}
	if flags.Changed("read-timeout") {
		cfg.ReadTimeout = mustGetDuration(cmd, "read-timeout")
	}
	if flags.Changed("write-timeout") {
		cfg.WriteTimeout = mustGetDuration(cmd, "write-timeout")
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = mustGetDuration(cmd, "idle-timeout")
	}

	for _, name := range portEnvVars {
		if env := os.Getenv(name); env != "" {
			port, err := parsePort(env)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", name, err)
			}
			cfg.Port = port
			break
		}
	}
	if env := os.Getenv("HTTP_HOST"); env != "" {
		cfg.Host = env
	}

	mode, err := handlers.ParseListMode(string(cfg.ListMode))
	if err != nil {
		return cfg, err
	}
	cfg.ListMode = mode

	if cfg.Port < 1 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("port out of range: %d", cfg.Port)
	}
	if cfg.RateLimit < 0 {
		return cfg, fmt.Errorf("rate limit must not be negative: %d", cfg.RateLimit)
	}

	return cfg, nil
}

// parsePort safely parses a port string to integer.
func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(portStr))
	if err != nil {
		return 0, fmt.Errorf("invalid port number: %s", portStr)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port out of range: %d", port)
	}
	return port, nil
}

// startWithGracefulShutdown starts the HTTP server and shuts it down when
// ctx is cancelled, draining open connections.
func startWithGracefulShutdown(ctx context.Context, httpServer *http.Server, srv *server.Server, logger *zerolog.Logger) error {
	serverErr := make(chan error, 1)

	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Str("service", "API").
			Msg("HTTP server listening")

		fmt.Printf("%s API server listening on %s\n", emoji.Info, httpServer.Addr)
		fmt.Println("   Press Ctrl+C to stop")

		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		_ = srv.Shutdown(context.Background())
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received via context")

		fmt.Printf("\n%s Shutting down API server...\n", emoji.Stop)

		// The parent context is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Background services shutdown had issues")
		}

		logger.Info().Msg("Server stopped gracefully")
		fmt.Printf("%s Server stopped\n", emoji.Success)
		return nil
	}
}
