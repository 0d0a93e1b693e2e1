// Package constants provides shared constants used throughout menumap.
package constants

import "time"

// Dataset defaults
const (
	// DefaultDataPath is where the dataset is read from when nothing else is configured
	DefaultDataPath = "./data/restaurant_menu_data.json"
)

// Server defaults
const (
	// DefaultPort is the listen port of the API server
	DefaultPort = 3000

	// DefaultHost binds every interface
	DefaultHost = "0.0.0.0"

	// DefaultReadTimeout is the HTTP read timeout
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the HTTP write timeout
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the HTTP keep-alive idle timeout
	DefaultIdleTimeout = 120 * time.Second

	// ShutdownTimeout bounds connection draining on SIGINT/SIGTERM
	ShutdownTimeout = 30 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
