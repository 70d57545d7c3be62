package venue

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
	"github.com/bookmyspot/bookmyspot-api/internal/middleware"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/response"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/validator"
)

// Handler handles venue HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates venue handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /venues with filters and pagination
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := Filter{
		City:   q.Get("city"),
		Search: q.Get("search"),
	}
	if raw := q.Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid category ID")
			return
		}
		f.CategoryID = &id
	}
	if raw := q.Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			response.BadRequest(w, "Invalid min_price")
			return
		}
		f.MinPrice = &v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			response.BadRequest(w, "Invalid max_price")
			return
		}
		f.MaxPrice = &v
	}

	p := paginationFromQuery(r)
	venues, total, err := h.service.List(r.Context(), f, p)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, venueResponses(venues), response.NewMeta(total, p.Page, p.Limit))
}

// ListMy handles GET /venues/my (organizer's own venues)
func (h *Handler) ListMy(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	p := paginationFromQuery(r)
	venues, total, err := h.service.ListByOwner(r.Context(), ownerID, p)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, venueResponses(venues), response.NewMeta(total, p.Page, p.Limit))
}

// GetByID handles GET /venues/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid venue ID")
		return
	}

	v, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, VenueResponseFromEntity(v))
}

// Create handles POST /venues (organizer only)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	ownerID := middleware.GetUserID(r.Context())
	v, err := h.service.Create(r.Context(), ownerID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Created(w, VenueResponseFromEntity(v))
}

// Update handles PUT /venues/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid venue ID")
		return
	}

	var req UpdateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	ctx := r.Context()
	v, err := h.service.Update(ctx, id, middleware.GetUserID(ctx), middleware.GetRole(ctx), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, VenueResponseFromEntity(v))
}

// Delete handles DELETE /venues/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid venue ID")
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
		response.NotFound(w, "Venue not found")
	case errors.Is(err, ErrForbidden):
		response.Forbidden(w, "Not the venue owner")
	default:
		response.InternalError(w)
	}
}

func venueResponses(venues []*Venue) []VenueResponse {
	out := make([]VenueResponse, 0, len(venues))
	for _, v := range venues {
		out = append(out, VenueResponseFromEntity(v))
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
