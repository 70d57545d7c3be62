package venue

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns venue router. Reads are public; writes require an organizer.
func (h *Handler) Routes(authMiddleware, organizerMiddleware func(http.Handler) http.Handler, venueBookings http.HandlerFunc) chi.Router {
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
			r.Get("/bookings", venueBookings)
		})
	})

	return r
}
