// internal/app/features/classes/routes.go
package classes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the /classes routes. The /class/{id} single lookup and
// the public /allclasses/accepted catalog are mounted separately in
// bootstrap because the original API shipped them under their own
// paths.
func Routes(h *Handler, requireToken, requireAdmin, requireTeacher func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Use(requireTeacher)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{email}", h.HandleListByTeacher)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Use(requireAdmin)
		pr.Get("/", h.HandleListAll)
		pr.Patch("/approve/{id}", h.HandleApprove)
		pr.Patch("/reject/{id}", h.HandleReject)
	})

	return r
}

// SingleRoutes mounts GET /class/{id}.
func SingleRoutes(h *Handler, requireToken func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Get("/{id}", h.HandleGetByID)
	})
	return r
}

// PublicRoutes mounts GET /allclasses/accepted.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/accepted", h.HandleListAccepted)
	return r
}
