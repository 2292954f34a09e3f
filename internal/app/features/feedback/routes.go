// internal/app/features/feedback/routes.go
package feedback

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the /feedback routes. Reading feedback is public so
// the landing page can show reviews without a session.
func Routes(h *Handler, requireToken func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Post("/", h.HandleCreate)
	})

	return r
}
