package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns admin router; everything requires an admin token
func (h *Handler) Routes(authMiddleware, adminMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware, adminMiddleware)

	r.Get("/stats", h.Stats)
	r.Get("/users", h.ListUsers)
	r.Post("/users/{id}/ban", h.BanUser)
	r.Get("/bookings", h.ListBookings)

	return r
}
