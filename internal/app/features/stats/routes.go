// internal/app/features/stats/routes.go
package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the /stats routes.
func Routes(h *Handler, requireToken, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken, requireAdmin)
		pr.Get("/", h.HandleGet)
	})

	return r
}
