// Package server provides the HTTP server for the menumap API.
//
// The package is layered:
//
//   - Server: core server struct with lifecycle management
//   - Config: server configuration with defaults
//   - Router: gorilla/mux route table and middleware chain
//   - Handlers: HTTP request handlers in the handlers subpackage
//
// The architecture follows the pattern: CLI → App → Server → Router → Handlers
//
// Usage:
//
//	cfg := server.DefaultConfig()
//	cfg.Port = 3000
//
//	srv, err := server.New(app, cfg)
//	if err != nil {
//	    return err // the dataset failed to load
//	}
//	defer srv.Shutdown(ctx)
//
//	http.ListenAndServe(":3000", srv.Handler())
package server

//go:generate gomarkdoc --output README.md .
