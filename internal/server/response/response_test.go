package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	menuErrors "github.com/agentstation/menumap/pkg/errors"
)

// TestFail tests the Fail helper function.
func TestFail(t *testing.T) {
	resp := Fail("TEST_ERROR", "Test error message", "Additional details")

	if resp.Code != "TEST_ERROR" {
		t.Errorf("expected Code=TEST_ERROR, got %s", resp.Code)
	}
	if resp.Message != "Test error message" {
		t.Errorf("expected Message=Test error message, got %s", resp.Message)
	}
	if resp.Details != "Additional details" {
		t.Errorf("expected Details=Additional details, got %s", resp.Details)
	}
}

// TestOK tests that success bodies are written without an envelope.
func TestOK(t *testing.T) {
	w := httptest.NewRecorder()

	OK(w, []map[string]any{{"id": 1, "name": "A"}})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", ct)
	}

	var decoded []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["name"] != "A" {
		t.Errorf("unexpected body %v", decoded)
	}
}

// TestOKEmptySlice tests that an empty slice encodes as [] and not null.
func TestOKEmptySlice(t *testing.T) {
	w := httptest.NewRecorder()

	OK(w, []string{})

	if got := w.Body.String(); got != "[]\n" {
		t.Errorf("expected [] body, got %q", got)
	}
}

// TestErrorHelpers tests all error response helpers.
func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name           string
		fn             func(w http.ResponseWriter)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "BadRequest",
			fn: func(w http.ResponseWriter) {
				BadRequest(w, "Invalid request", "Missing field")
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
		},
		{
			name: "NotFound",
			fn: func(w http.ResponseWriter) {
				NotFound(w, "restaurant 99 not found", "")
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name: "MethodNotAllowed",
			fn: func(w http.ResponseWriter) {
				MethodNotAllowed(w, "POST")
			},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   "METHOD_NOT_ALLOWED",
		},
		{
			name: "RateLimited",
			fn: func(w http.ResponseWriter) {
				RateLimited(w, "Too many requests")
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedCode:   "RATE_LIMITED",
		},
		{
			name: "InternalError",
			fn: func(w http.ResponseWriter) {
				InternalError(w, errors.New("internal error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.fn(w)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var resp Error
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Code != tt.expectedCode {
				t.Errorf("expected Code=%s, got %s", tt.expectedCode, resp.Code)
			}
			if resp.Message == "" {
				t.Error("expected Message to be set")
			}
		})
	}
}

// TestErrorFromType tests typed error mapping.
func TestErrorFromType(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "NotFoundError",
			err:             menuErrors.NewNotFoundError("restaurant", "99"),
			expectedStatus:  http.StatusNotFound,
			expectedCode:    "NOT_FOUND",
			expectedMessage: "restaurant 99 not found",
		},
		{
			name:            "wrapped NotFoundError",
			err:             fmt.Errorf("lookup: %w", menuErrors.NewNotFoundError("restaurant", "Z")),
			expectedStatus:  http.StatusNotFound,
			expectedCode:    "NOT_FOUND",
			expectedMessage: "lookup: restaurant Z not found",
		},
		{
			name:            "ValidationError",
			err:             menuErrors.NewValidationError("id", "x", "must be a number"),
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    "BAD_REQUEST",
			expectedMessage: "validation failed for field id: must be a number",
		},
		{
			name:            "Generic error",
			err:             errors.New("disk on fire"),
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    "INTERNAL_ERROR",
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorFromType(w, tt.err)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var resp Error
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Code != tt.expectedCode {
				t.Errorf("expected Code=%s, got %s", tt.expectedCode, resp.Code)
			}
			if resp.Message != tt.expectedMessage {
				t.Errorf("expected Message=%q, got %q", tt.expectedMessage, resp.Message)
			}
		})
	}
}

// TestErrorDetails tests error details omitempty behavior.
func TestErrorDetails(t *testing.T) {
	data, err := json.Marshal(Fail("TEST", "message", ""))
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var unmarshaled map[string]any
	if err := json.Unmarshal(data, &unmarshaled); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if _, ok := unmarshaled["details"]; ok {
		t.Error("expected 'details' to be omitted when empty")
	}
	if unmarshaled["message"] != "message" {
		t.Errorf("expected message=message, got %v", unmarshaled["message"])
	}
}
