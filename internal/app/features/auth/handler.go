// Package auth exposes POST /jwt: the sign-in bootstrap that mints a
// bearer credential from the claims the client posts.
package auth

import (
	"net/http"

	"github.com/edumate/edumate-server/internal/app/system/httpjson"
	"github.com/edumate/edumate-server/internal/app/system/token"
	"go.uber.org/zap"
)

// Handler is the auth feature entry point.
type Handler struct {
	Issuer *token.Issuer
	Log    *zap.Logger
}

// NewHandler constructs an auth Handler.
func NewHandler(issuer *token.Issuer, logger *zap.Logger) *Handler {
	return &Handler{Issuer: issuer, Log: logger}
}

// HandleIssue handles POST /jwt.
//
// The body is an arbitrary claims object (typically {email}); whatever
// it contains gets signed with a 6-hour expiry. No validation happens
// here: the credential only proves the claims were presented at
// sign-in, and role checks always consult the users collection.
func (h *Handler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	var claims map[string]any
	if !httpjson.Decode(w, r, &claims) {
		return
	}

	signed, err := h.Issuer.Issue(claims)
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{"token": signed})
}
