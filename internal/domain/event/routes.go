package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns event router. Reads are public; writes require an organizer.
func (h *Handler) Routes(authMiddleware, organizerMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware, organizerMiddleware)
		r.Post("/", h.Create)
		r.Get("/my", h.ListMy)
	})

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware, organizerMiddleware)
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
		})
	})

	return r
}
