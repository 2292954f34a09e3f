// internal/app/features/assignments/routes.go
package assignments

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the /assignments routes.
func Routes(h *Handler, requireToken, requireTeacher func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Listing is public: the catalog shows assignment previews before
	// a student signs in.
	r.Get("/", h.HandleList)

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Use(requireTeacher)
		pr.Post("/", h.HandleCreate)
	})

	return r
}
