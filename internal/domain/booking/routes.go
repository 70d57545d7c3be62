package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns booking router; every endpoint requires auth
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Post("/", h.Create)
	r.Post("/quote", h.Quote)
	r.Get("/my", h.ListMy)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Patch("/status", h.UpdateStatus)
		r.Post("/cancel", h.Cancel)
	})

	return r
}
