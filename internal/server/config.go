package server

import (
	"time"

	"github.com/agentstation/menumap/internal/server/handlers"
	"github.com/agentstation/menumap/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// API settings
	PathPrefix string
	ListMode   handlers.ListMode

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// Performance settings
	RateLimit  int  // Requests per minute per IP (0 to disable)
	TrustProxy bool // Key the rate limit by X-Forwarded-For

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:         constants.DefaultHost,
		Port:         constants.DefaultPort,
		PathPrefix:   "",
		ListMode:     handlers.ListAuto,
		CORSEnabled:  true,
		CORSOrigins:  []string{},
		RateLimit:    0,
		ReadTimeout:  constants.DefaultReadTimeout,
		WriteTimeout: constants.DefaultWriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}
}
