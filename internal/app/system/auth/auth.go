// Package auth provides the authentication gate: middleware that
// verifies the bearer credential on protected routes and attaches the
// decoded claims to the request context for downstream consumers.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/edumate/edumate-server/internal/app/system/httpjson"
	"github.com/edumate/edumate-server/internal/app/system/token"
	"github.com/golang-jwt/jwt/v4"
)

type ctxKey string

const claimsKey ctxKey = "tokenClaims"

// CurrentClaims returns the verified token claims and a found flag.
// ok=false means the request never passed RequireToken.
func CurrentClaims(r *http.Request) (jwt.MapClaims, bool) {
	c, ok := r.Context().Value(claimsKey).(jwt.MapClaims)
	return c, ok
}

// CurrentEmail returns the email claim of the authenticated caller.
func CurrentEmail(r *http.Request) (string, bool) {
	claims, ok := CurrentClaims(r)
	if !ok {
		return "", false
	}
	return token.Email(claims)
}

// RequireToken verifies the Authorization bearer credential before any
// handler runs. Missing header and invalid/expired token both produce
// the same 401 so callers cannot tell which check failed.
func RequireToken(iss *token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpjson.Unauthenticated(w)
				return
			}

			raw := strings.TrimPrefix(header, "Bearer ")
			claims, err := iss.Verify(raw)
			if err != nil {
				httpjson.Unauthenticated(w)
				return
			}

			next.ServeHTTP(w, withClaims(r, claims))
		})
	}
}

func withClaims(r *http.Request, claims jwt.MapClaims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
}

// WithTestClaims injects claims directly into the request context,
// bypassing token verification. Test helper only.
func WithTestClaims(r *http.Request, claims jwt.MapClaims) *http.Request {
	return withClaims(r, claims)
}
