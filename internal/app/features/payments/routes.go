// internal/app/features/payments/routes.go
package payments

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the payment-intent route.
func Routes(h *Handler, requireToken func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(requireToken)
		pr.Post("/", h.HandleCreateIntent)
	})

	return r
}
