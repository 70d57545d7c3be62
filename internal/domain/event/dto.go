package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
)

// CreateEventRequest for POST /events
type CreateEventRequest struct {
	VenueID     string `json:"venue_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	EventType   string `json:"event_type" validate:"required,max=100"`
	CategoryID  string `json:"category_id" validate:"omitempty,uuid"`
	Image       string `json:"image" validate:"omitempty,url,max=2000"`

	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`

	Price       booking.PriceText `json:"price" validate:"omitempty,max=100"`
	PricingMode string            `json:"pricing_mode" validate:"omitempty,pricing_mode"`

	Capacity int `json:"capacity" validate:"omitempty,gte=1,lte=100000"`
}

// UpdateEventRequest for PUT /events/{id}; nil fields stay untouched
type UpdateEventRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	EventType   *string `json:"event_type" validate:"omitempty,max=100"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
	Image       *string `json:"image" validate:"omitempty,url,max=2000"`

	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`

	Price       *booking.PriceText `json:"price" validate:"omitempty,max=100"`
	PricingMode *string            `json:"pricing_mode" validate:"omitempty,pricing_mode"`

	Capacity *int  `json:"capacity" validate:"omitempty,gte=1,lte=100000"`
	IsActive *bool `json:"is_active"`
}

// Filter narrows the public event listing
type Filter struct {
	VenueID    *uuid.UUID
	CategoryID *uuid.UUID
	EventType  string
	City       string
	From       *time.Time
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	VenueID     uuid.UUID `json:"venue_id"`
	CreatedAt   time.Time `json:"created_at"`

	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	EventType   string     `json:"event_type"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Image       string     `json:"image,omitempty"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	Price       string `json:"price,omitempty"`
	PricingMode string `json:"pricing_mode,omitempty"`

	Capacity int  `json:"capacity,omitempty"`
	IsActive bool `json:"is_active"`

	VenueName string `json:"venue_name,omitempty"`
	VenueCity string `json:"venue_city,omitempty"`
}

// EventResponseFromEntity converts entity to API response
func EventResponseFromEntity(e *Event) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		OrganizerID: e.OrganizerID,
		VenueID:     e.VenueID,
		CreatedAt:   e.CreatedAt,

		Name:      e.Name,
		EventType: e.EventType,

		StartDate: e.StartDate.Format(booking.DateLayout),
		EndDate:   e.EndDate.Format(booking.DateLayout),

		Capacity: e.Capacity,
		IsActive: e.IsActive,

		VenueName: e.VenueName,
		VenueCity: e.VenueCity,
	}

	if e.Description.Valid {
		resp.Description = e.Description.String
	}
	if e.CategoryID.Valid {
		id := e.CategoryID.UUID
		resp.CategoryID = &id
	}
	if e.Image.Valid {
		resp.Image = e.Image.String
	}
	if e.Price.Valid {
		resp.Price = e.Price.String
	}
	if e.PricingMode.Valid {
		resp.PricingMode = e.PricingMode.String
	}

	return resp
}
