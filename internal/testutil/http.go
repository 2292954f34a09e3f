package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edumate/edumate-server/internal/app/system/auth"
	"github.com/golang-jwt/jwt/v4"
)

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates a request with a JSON-encoded body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithClaims injects verified token claims into the request context,
// bypassing the token guard the way a valid bearer credential would.
func WithClaims(r *http.Request, email string) *http.Request {
	return auth.WithTestClaims(r, jwt.MapClaims{"email": email})
}

// NewAuthenticatedRequest creates a request carrying claims for email.
func NewAuthenticatedRequest(method, target, email string) *http.Request {
	return WithClaims(httptest.NewRequest(method, target, nil), email)
}

// NewAuthenticatedJSONRequest creates a JSON request carrying claims.
func NewAuthenticatedJSONRequest(t *testing.T, method, target, email string, body any) *http.Request {
	t.Helper()
	return WithClaims(NewJSONRequest(t, method, target, body), email)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t *testing.T, expected int) {
	t.Helper()
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d (body: %s)", r.Code, expected, r.Body.String())
	}
}

// DecodeJSON unmarshals the response body into dst.
func (r *ResponseRecorder) DecodeJSON(t *testing.T, dst any) {
	t.Helper()
	if err := json.Unmarshal(r.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response body %q: %v", r.Body.String(), err)
	}
}
