package category

import "github.com/google/uuid"

// CreateCategoryRequest for POST /categories
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Icon string `json:"icon" validate:"omitempty,max=255"`
}

// UpdateCategoryRequest for PUT /categories/{id}
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=100"`
	Icon *string `json:"icon" validate:"omitempty,max=255"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Icon       string    `json:"icon,omitempty"`
	VenueCount int       `json:"venue_count,omitempty"`
}

// CategoryResponseFromEntity converts entity to API response
func CategoryResponseFromEntity(c *Category) CategoryResponse {
	resp := CategoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
		VenueCount: c.VenueCount,
	}
	if c.Icon.Valid {
		resp.Icon = c.Icon.String
	}
	return resp
}
