// internal/app/features/users/routes.go
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts all Users routes under the base path (typically
// "/users" from bootstrap). requireToken and requireAdmin are the
// guard middlewares built in bootstrap.
func Routes(h *Handler, requireToken, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Sign-in bootstrap: deliberately unguarded, the client calls it
	// before it holds a token.
	r.Post("/", h.HandleCreate)

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Get("/{email}", h.HandleGetByEmail)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Use(requireAdmin)
		pr.Get("/", h.HandleList)
		pr.Patch("/admin/{id}", h.HandlePromoteAdmin)
	})

	return r
}
