// internal/app/features/auth/routes.go
package auth

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted at /jwt.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleIssue)
	return r
}
