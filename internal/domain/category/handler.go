package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/pkg/response"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/validator"
)

// Handler handles category HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates category handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /categories
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, CategoryResponseFromEntity(c))
	}
	response.OK(w, responses)
}

// GetByID handles GET /categories/{id}; accepts a UUID or a slug
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "id")

	var c *Category
	var err error
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		c, err = h.service.GetByID(r.Context(), id)
	} else {
		c, err = h.service.GetBySlug(r.Context(), param)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, CategoryResponseFromEntity(c))
}

// Create handles POST /categories (admin only)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	c, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Created(w, CategoryResponseFromEntity(c))
}

// Update handles PUT /categories/{id} (admin only)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	var req UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	c, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, CategoryResponseFromEntity(c))
}

// Delete handles DELETE /categories/{id} (admin only)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Category not found")
	case errors.Is(err, ErrAlreadyExists):
		response.Conflict(w, "Category with this name already exists")
	case errors.Is(err, ErrInUse):
		response.Conflict(w, "Category is still referenced by venues or events")
	default:
		response.InternalError(w)
	}
}
