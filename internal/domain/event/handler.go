package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
	"github.com/bookmyspot/bookmyspot-api/internal/middleware"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/response"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/validator"
)

// Handler handles event HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates event handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /events with filters and pagination
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := Filter{
		EventType: q.Get("event_type"),
		City:      q.Get("city"),
	}
	if raw := q.Get("venue_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid venue ID")
			return
		}
		f.VenueID = &id
	}
	if raw := q.Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid category ID")
			return
		}
		f.CategoryID = &id
	}
	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse(booking.DateLayout, raw)
		if err != nil {
			response.BadRequest(w, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		f.From = &t
	}

	p := paginationFromQuery(r)
	events, total, err := h.service.List(r.Context(), f, p)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, eventResponses(events), response.NewMeta(total, p.Page, p.Limit))
}

// ListMy handles GET /events/my (organizer's own events)
func (h *Handler) ListMy(w http.ResponseWriter, r *http.Request) {
	organizerID := middleware.GetUserID(r.Context())

	p := paginationFromQuery(r)
	events, total, err := h.service.ListByOrganizer(r.Context(), organizerID, p)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, eventResponses(events), response.NewMeta(total, p.Page, p.Limit))
}

// GetByID handles GET /events/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	e, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, EventResponseFromEntity(e))
}

// Create handles POST /events (organizer only)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	organizerID := middleware.GetUserID(r.Context())
	e, err := h.service.Create(r.Context(), organizerID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Created(w, EventResponseFromEntity(e))
}

// Update handles PUT /events/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	var req UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	ctx := r.Context()
	e, err := h.service.Update(ctx, id, middleware.GetUserID(ctx), middleware.GetRole(ctx), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, EventResponseFromEntity(e))
}

// Delete handles DELETE /events/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	ctx := r.Context()
	if err := h.service.Delete(ctx, id, middleware.GetUserID(ctx), middleware.GetRole(ctx)); err != nil {
		h.writeError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Event not found")
	case errors.Is(err, ErrVenueNotFound):
		response.NotFound(w, "Venue not found")
	case errors.Is(err, ErrForbidden):
		response.Forbidden(w, "Not the event organizer")
	case errors.Is(err, ErrNotVenueOwner):
		response.Forbidden(w, "Event venue belongs to another organizer")
	case errors.Is(err, booking.ErrInvalidDate):
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD")
	default:
		response.InternalError(w)
	}
}

func eventResponses(events []*Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventResponseFromEntity(e))
	}
	return out
}

func paginationFromQuery(r *http.Request) booking.Pagination {
	p := booking.Pagination{Page: 1, Limit: 20}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 1 {
		p.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 1 && v <= 100 {
		p.Limit = v
	}
	return p
}
