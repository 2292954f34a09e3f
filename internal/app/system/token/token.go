// Package token mints and verifies the signed bearer credentials used by
// the API. Tokens are HS256 JWTs carrying whatever claims the sign-in
// flow posts (at minimum the user's email) plus a 6-hour expiry.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TTL is how long issued tokens stay valid.
const TTL = 6 * time.Hour

// ErrInvalid is returned for any credential that fails verification:
// malformed, mis-signed, or expired. Callers deliberately get one error
// class so responses cannot reveal which check failed.
var ErrInvalid = errors.New("invalid token")

// Issuer signs and verifies tokens with a fixed secret.
type Issuer struct {
	secret []byte
	iss    string
}

// NewIssuer creates an Issuer. An empty secret is a configuration error
// and is rejected at startup by config validation, not here.
func NewIssuer(secret, iss string) *Issuer {
	return &Issuer{secret: []byte(secret), iss: iss}
}

// Issue signs the given claims into a compact JWT. The claims map is
// copied before the exp and iss claims are added, so callers keep
// ownership.
func (i *Issuer) Issue(claims map[string]any) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["exp"] = time.Now().Add(TTL).Unix()
	if i.iss != "" {
		mc["iss"] = i.iss
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a compact JWT, returning its claims.
// Any failure maps to ErrInvalid.
func (i *Issuer) Verify(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}

// Email extracts the email claim from a verified claims set.
func Email(claims jwt.MapClaims) (string, bool) {
	email, ok := claims["email"].(string)
	return email, ok && email != ""
}
