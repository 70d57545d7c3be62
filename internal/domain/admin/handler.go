package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/user"
	"github.com/bookmyspot/bookmyspot-api/internal/middleware"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/response"
)

// Handler handles admin HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates admin handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Stats handles GET /admin/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetDashboardStats(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, stats)
}

// ListUsers handles GET /admin/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pageAndLimit(r)

	users, total, err := h.service.ListUsers(r.Context(), limit, (page-1)*limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, UserResponseFromEntity(u))
	}
	response.WithMeta(w, responses, response.NewMeta(total, page, limit))
}

// BanUser handles POST /admin/users/{id}/ban
func (h *Handler) BanUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req BanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	adminID := middleware.GetUserID(r.Context())
	if err := h.service.SetUserBanned(r.Context(), adminID, userID, req.Banned); err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			response.NotFound(w, "User not found")
		case errors.Is(err, ErrCannotBanSelf):
			response.BadRequest(w, "Cannot ban yourself")
		case errors.Is(err, ErrCannotBanAdmin):
			response.Forbidden(w, "Cannot ban an admin")
		default:
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}

// ListBookings handles GET /admin/bookings
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	page, limit := pageAndLimit(r)

	var status *booking.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := booking.Status(raw)
		switch s {
		case booking.StatusPending, booking.StatusConfirmed, booking.StatusRejected,
			booking.StatusCancelled, booking.StatusCompleted:
			status = &s
		default:
			response.BadRequest(w, "Invalid status filter")
			return
		}
	}

	bookings, total, err := h.service.ListBookings(r.Context(), status, booking.Pagination{Page: page, Limit: limit})
	if err != nil {
		response.InternalError(w)
		return
	}

	responses := make([]booking.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, booking.BookingResponseFromEntity(b))
	}
	response.WithMeta(w, responses, response.NewMeta(total, page, limit))
}

func pageAndLimit(r *http.Request) (int, int) {
	page, limit := 1, 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 1 && v <= 100 {
		limit = v
	}
	return page, limit
}
