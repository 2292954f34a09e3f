// internal/app/features/submissions/routes.go
package submissions

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the /submissions routes.
func Routes(h *Handler, requireToken, requireTeacher func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Post("/", h.HandleCreate)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken, requireTeacher)
		pr.Get("/", h.HandleListByClass)
	})

	return r
}
