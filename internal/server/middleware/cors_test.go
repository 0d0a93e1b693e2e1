package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefaultCORSConfig tests default CORS configuration.
func TestDefaultCORSConfig(t *testing.T) {
	config := DefaultCORSConfig()

	assert.False(t, config.AllowAll)
	assert.Equal(t, []string{"*"}, config.AllowedOrigins)
	assert.Equal(t, []string{http.MethodGet, http.MethodOptions}, config.AllowedMethods)
	assert.Contains(t, config.AllowedHeaders, RequestIDHeader)
}

// TestCORS tests the CORS middleware with various scenarios.
func TestCORS(t *testing.T) {
	tests := []struct {
		name         string
		config       CORSConfig
		origin       string
		expectOrigin string
	}{
		{
			name:         "allow all",
			config:       CORSConfig{AllowAll: true},
			origin:       "https://example.com",
			expectOrigin: "*",
		},
		{
			name:         "no origins configured",
			config:       CORSConfig{},
			origin:       "https://example.com",
			expectOrigin: "*",
		},
		{
			name:         "wildcard in list echoes origin",
			config:       DefaultCORSConfig(),
			origin:       "https://example.com",
			expectOrigin: "https://example.com",
		},
		{
			name:         "specific origin allowed",
			config:       CORSConfig{AllowedOrigins: []string{"https://a.example", "https://b.example"}},
			origin:       "https://b.example",
			expectOrigin: "https://b.example",
		},
		{
			name:         "origin not allowed",
			config:       CORSConfig{AllowedOrigins: []string{"https://a.example"}},
			origin:       "https://evil.example",
			expectOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(tt.config)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
		})
	}
}

// TestCORS_PreflightShortCircuit verifies preflights never reach the handler.
func TestCORS_PreflightShortCircuit(t *testing.T) {
	called := false
	handler := CORS(DefaultCORSConfig())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/restaurants", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

// TestCORS_PlainOptionsPassthrough verifies a non-preflight OPTIONS reaches the router.
func TestCORS_PlainOptionsPassthrough(t *testing.T) {
	called := false
	handler := CORS(DefaultCORSConfig())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodOptions, "/restaurants", nil))
	assert.True(t, called)
}

func TestIsOriginAllowed(t *testing.T) {
	assert.True(t, isOriginAllowed("https://a", []string{"https://a"}))
	assert.True(t, isOriginAllowed("https://a", []string{"*"}))
	assert.False(t, isOriginAllowed("https://a", []string{"https://b"}))
	assert.False(t, isOriginAllowed("https://a", nil))
}
