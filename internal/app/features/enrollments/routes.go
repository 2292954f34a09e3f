// internal/app/features/enrollments/routes.go
package enrollments

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the /enrollments routes.
func Routes(h *Handler, requireToken func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{email}", h.HandleListByStudent)
	})

	return r
}
