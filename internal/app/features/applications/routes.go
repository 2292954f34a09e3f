// internal/app/features/applications/routes.go
package applications

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts all Application routes under the base path (typically
// "/applications" from bootstrap).
func Routes(h *Handler, requireToken, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{email}", h.HandleStatusesByEmail)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Use(requireAdmin)
		pr.Get("/", h.HandleList)
		pr.Patch("/approve/{id}", h.HandleApprove)
		pr.Patch("/reject/{id}", h.HandleReject)
	})

	return r
}
