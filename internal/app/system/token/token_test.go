package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestIssueAndVerify(t *testing.T) {
	iss := NewIssuer("test-secret", "edumate")

	signed, err := iss.Issue(map[string]any{"email": "student@example.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := iss.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	email, ok := Email(claims)
	if !ok || email != "student@example.com" {
		t.Errorf("email claim: got %q (ok=%v), want %q", email, ok, "student@example.com")
	}
	if got, _ := claims["iss"].(string); got != "edumate" {
		t.Errorf("iss claim: got %q, want %q", got, "edumate")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := NewIssuer("secret-a", "").Issue(map[string]any{"email": "a@b.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := NewIssuer("secret-b", "").Verify(signed); err != ErrInvalid {
		t.Errorf("expected ErrInvalid for mis-signed token, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	if _, err := NewIssuer("s", "").Verify("not.a.token"); err != ErrInvalid {
		t.Errorf("expected ErrInvalid for garbage, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	// Hand-roll a token whose exp is in the past using the same secret.
	mc := jwt.MapClaims{
		"email": "late@example.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString([]byte("s"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewIssuer("s", "").Verify(signed); err != ErrInvalid {
		t.Errorf("expected ErrInvalid for expired token, got %v", err)
	}
}

func TestIssue_DoesNotMutateInput(t *testing.T) {
	claims := map[string]any{"email": "x@y.com"}
	if _, err := NewIssuer("s", "").Issue(claims); err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, found := claims["exp"]; found {
		t.Error("Issue mutated the caller's claims map")
	}
}
