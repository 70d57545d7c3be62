package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/middleware"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/response"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Quote handles POST /bookings/quote
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	quote, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, quote)
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	userID := middleware.GetUserID(r.Context())
	b, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Created(w, BookingResponseFromEntity(b))
}

// GetByID handles GET /bookings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	ctx := r.Context()
	b, err := h.service.GetByID(ctx, id, middleware.GetUserID(ctx), middleware.GetRole(ctx))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, BookingResponseFromEntity(b))
}

// ListMy handles GET /bookings/my
func (h *Handler) ListMy(w http.ResponseWriter, r *http.Request) {
	p := paginationFromQuery(r)
	userID := middleware.GetUserID(r.Context())

	bookings, total, err := h.service.ListMy(r.Context(), userID, p)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, bookingResponses(bookings), response.NewMeta(total, p.Page, p.Limit))
}

// ListForVenue handles GET /venues/{id}/bookings
func (h *Handler) ListForVenue(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid venue ID")
		return
	}

	p := paginationFromQuery(r)
	ctx := r.Context()
	bookings, total, err := h.service.ListForVenue(ctx, venueID, middleware.GetUserID(ctx), middleware.GetRole(ctx), p)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.WithMeta(w, bookingResponses(bookings), response.NewMeta(total, p.Page, p.Limit))
}

// UpdateStatus handles PATCH /bookings/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	ctx := r.Context()
	b, err := h.service.UpdateStatus(ctx, id, middleware.GetUserID(ctx), middleware.GetRole(ctx), Status(req.Status))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, BookingResponseFromEntity(b))
}

// Cancel handles POST /bookings/{id}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	b, err := h.service.Cancel(r.Context(), id, middleware.GetUserID(r.Context()), req.Reason)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, BookingResponseFromEntity(b))
}

// writeError maps domain errors onto the response envelope
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidDate):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrMissingIdentifier):
		response.BadRequest(w, "A user and a venue or event identifier are required")
	case errors.Is(err, ErrVenueNotFound):
		response.NotFound(w, "Venue not found")
	case errors.Is(err, ErrEventNotFound):
		response.NotFound(w, "Event not found")
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, ErrForbidden):
		response.Forbidden(w, "You do not have access to this booking")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Conflict(w, "Booking status cannot change this way")
	case errors.Is(err, ErrAlreadyCancelled):
		response.Conflict(w, "Booking is already cancelled")
	default:
		response.InternalError(w)
	}
}

func bookingResponses(bookings []*Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingResponseFromEntity(b))
	}
	return out
}

func paginationFromQuery(r *http.Request) Pagination {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return Pagination{Page: page, Limit: limit}
}
