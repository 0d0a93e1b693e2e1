package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agentstation/menumap/internal/server/handlers"
	"github.com/agentstation/menumap/internal/server/middleware"
	"github.com/agentstation/menumap/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	// Match on the escaped path so names containing "/" can be addressed as %2F
	router := mux.NewRouter().UseEncodedPath()

	h := handlers.New(s.dataset, s.config.ListMode, s.app.Version(), s.logger)

	s.registerRoutes(router, h)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "no route for "+r.URL.Path, "")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, r.Method)
	})

	return s.applyMiddleware(router)
}

// registerRoutes registers all HTTP routes under the configured prefix.
func (s *Server) registerRoutes(router *mux.Router, h *handlers.Handlers) {
	api := router
	if s.config.PathPrefix != "" {
		api = router.PathPrefix(s.config.PathPrefix).Subrouter()
	}

	// Favicon handler (return 204 No Content to avoid 404 logs)
	router.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)

	// Health endpoints
	api.HandleFunc("/health", h.HandleHealth).Methods(http.MethodGet)
	api.HandleFunc("/ready", h.HandleReady).Methods(http.MethodGet)

	// Restaurants
	api.HandleFunc("/restaurants", h.HandleListRestaurants).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{key}/menu", h.HandleGetMenu).Methods(http.MethodGet)

	// OpenAPI specification and docs
	api.HandleFunc("/openapi.json", h.HandleOpenAPIJSON).Methods(http.MethodGet)
	api.HandleFunc("/openapi.yaml", h.HandleOpenAPIYAML).Methods(http.MethodGet)
	api.HandleFunc("/docs", h.HandleDocs).Methods(http.MethodGet)
}

// applyMiddleware wraps handler with the middleware chain.
// Order, outermost first: request id, recovery, logging, CORS, rate limit.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	chain := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.Recovery(s.logger),
		middleware.Logger(s.logger),
	}

	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		chain = append(chain, middleware.CORS(corsConfig))
	}

	if cfg.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(s.ctx, cfg.RateLimit, s.logger).TrustForwarded(cfg.TrustProxy)
		chain = append(chain, middleware.RateLimit(rateLimiter))
	}

	return middleware.Chain(chain...)(handler)
}
