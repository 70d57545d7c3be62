package venue

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
)

// CreateVenueRequest for POST /venues
type CreateVenueRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	CategoryID  string `json:"category_id" validate:"omitempty,uuid"`

	City    string `json:"city" validate:"required,min=2,max=100"`
	Address string `json:"address" validate:"omitempty,max=500"`

	Capacity int      `json:"capacity" validate:"omitempty,gte=1,lte=100000"`
	Image    string   `json:"image" validate:"omitempty,url,max=2000"`
	Images   []string `json:"images" validate:"omitempty,max=20,dive,url"`

	Price       booking.PriceText `json:"price" validate:"required,max=100"`
	ServiceFee  *float64          `json:"service_fee" validate:"omitempty,gte=0"`
	GSTPercent  *float64          `json:"gst_percent" validate:"omitempty,gte=0,lte=100"`
	PricingMode string            `json:"pricing_mode" validate:"omitempty,pricing_mode"`

	Inclusions []string `json:"inclusions" validate:"omitempty,max=50,dive,max=200"`
	Exclusions []string `json:"exclusions" validate:"omitempty,max=50,dive,max=200"`

	FullRefundDays       int     `json:"full_refund_days" validate:"omitempty,gte=0,lte=365"`
	PartialRefundDays    int     `json:"partial_refund_days" validate:"omitempty,gte=0,lte=365"`
	PartialRefundPercent float64 `json:"partial_refund_percent" validate:"omitempty,gte=0,lte=100"`
}

// UpdateVenueRequest for PUT /venues/{id}; nil fields stay untouched
type UpdateVenueRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`

	City    *string `json:"city" validate:"omitempty,min=2,max=100"`
	Address *string `json:"address" validate:"omitempty,max=500"`

	Capacity *int      `json:"capacity" validate:"omitempty,gte=1,lte=100000"`
	Image    *string   `json:"image" validate:"omitempty,url,max=2000"`
	Images   *[]string `json:"images" validate:"omitempty,max=20,dive,url"`

	Price       *booking.PriceText `json:"price" validate:"omitempty,max=100"`
	ServiceFee  *float64           `json:"service_fee" validate:"omitempty,gte=0"`
	GSTPercent  *float64           `json:"gst_percent" validate:"omitempty,gte=0,lte=100"`
	PricingMode *string            `json:"pricing_mode" validate:"omitempty,pricing_mode"`

	Inclusions *[]string `json:"inclusions" validate:"omitempty,max=50,dive,max=200"`
	Exclusions *[]string `json:"exclusions" validate:"omitempty,max=50,dive,max=200"`

	FullRefundDays       *int     `json:"full_refund_days" validate:"omitempty,gte=0,lte=365"`
	PartialRefundDays    *int     `json:"partial_refund_days" validate:"omitempty,gte=0,lte=365"`
	PartialRefundPercent *float64 `json:"partial_refund_percent" validate:"omitempty,gte=0,lte=100"`

	IsActive *bool `json:"is_active"`
}

// Filter narrows the public venue listing
type Filter struct {
	City       string
	CategoryID *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
}

// VenueResponse represents a venue in API responses
type VenueResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`

	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`

	City    string `json:"city"`
	Address string `json:"address,omitempty"`

	Capacity int      `json:"capacity,omitempty"`
	Image    string   `json:"image,omitempty"`
	Images   []string `json:"images,omitempty"`

	Price       string   `json:"price"`
	ServiceFee  *float64 `json:"service_fee,omitempty"`
	GSTPercent  *float64 `json:"gst_percent,omitempty"`
	PricingMode string   `json:"pricing_mode,omitempty"`

	Inclusions []string `json:"inclusions,omitempty"`
	Exclusions []string `json:"exclusions,omitempty"`

	CancellationPolicy booking.CancellationPolicy `json:"cancellation_policy"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	IsActive    bool    `json:"is_active"`
}

// VenueResponseFromEntity converts entity to API response
func VenueResponseFromEntity(v *Venue) VenueResponse {
	resp := VenueResponse{
		ID:        v.ID,
		OwnerID:   v.OwnerID,
		CreatedAt: v.CreatedAt,

		Name:         v.Name,
		CategoryName: v.CategoryName,

		City: v.City,

		Capacity: v.Capacity,
		Images:   v.Images,

		Price:       v.Price,
		PricingMode: v.PricingMode,

		Inclusions: v.Inclusions,
		Exclusions: v.Exclusions,

		CancellationPolicy: policyOf(v),

		Rating:      v.Rating,
		ReviewCount: v.ReviewCount,
		IsActive:    v.IsActive,
	}

	if v.Description.Valid {
		resp.Description = v.Description.String
	}
	if v.CategoryID.Valid {
		id := v.CategoryID.UUID
		resp.CategoryID = &id
	}
	if v.Address.Valid {
		resp.Address = v.Address.String
	}
	if v.Image.Valid {
		resp.Image = v.Image.String
	}
	if v.ServiceFee.Valid {
		fee := v.ServiceFee.Float64
		resp.ServiceFee = &fee
	}
	if v.GSTPercent.Valid {
		gst := v.GSTPercent.Float64
		resp.GSTPercent = &gst
	}

	return resp
}

// policyOf returns the venue's cancellation policy, falling back to the
// platform default when the venue never set one
func policyOf(v *Venue) booking.CancellationPolicy {
	if v.FullRefundDays == 0 && v.PartialRefundDays == 0 && v.PartialRefundPercent == 0 {
		return booking.DefaultCancellationPolicy()
	}
	return booking.CancellationPolicy{
		FullRefundDays:       v.FullRefundDays,
		PartialRefundDays:    v.PartialRefundDays,
		PartialRefundPercent: v.PartialRefundPercent,
	}
}
