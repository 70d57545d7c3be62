package booking

import (
	"time"

	"github.com/google/uuid"
)

// QuoteRequest for POST /bookings/quote
type QuoteRequest struct {
	VenueID    string `json:"venue_id" validate:"omitempty,uuid"`
	EventID    string `json:"event_id" validate:"omitempty,uuid"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	GuestCount int    `json:"guest_count" validate:"omitempty,gte=1,lte=10000"`
}

// CreateBookingRequest for POST /bookings
type CreateBookingRequest struct {
	VenueID         string `json:"venue_id" validate:"omitempty,uuid"`
	EventID         string `json:"event_id" validate:"omitempty,uuid"`
	StartDate       string `json:"start_date" validate:"required"`
	EndDate         string `json:"end_date" validate:"required"`
	GuestCount      int    `json:"guest_count" validate:"omitempty,gte=1,lte=10000"`
	EventType       string `json:"event_type" validate:"omitempty,max=100"`
	ContactName     string `json:"contact_name" validate:"required,min=2,max=100"`
	ContactEmail    string `json:"contact_email" validate:"required,email"`
	ContactPhone    string `json:"contact_phone" validate:"omitempty,min=7,max=20"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=2000"`
}

// UpdateStatusRequest for PATCH /bookings/{id}/status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed rejected completed"`
}

// CancelRequest for POST /bookings/{id}/cancel
type CancelRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

// QuoteResponse is the price preview returned without persisting anything
type QuoteResponse struct {
	Range     DateRange `json:"date_range"`
	Breakdown Breakdown `json:"breakdown"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID      uuid.UUID  `json:"id"`
	UserID  uuid.UUID  `json:"user_id"`
	VenueID uuid.UUID  `json:"venue_id"`
	EventID *uuid.UUID `json:"event_id,omitempty"`

	VenueName  string `json:"venue_name"`
	VenueImage string `json:"venue_image,omitempty"`
	Location   string `json:"location,omitempty"`
	EventType  string `json:"event_type"`

	BookingDate  string `json:"booking_date"`
	EventDate    string `json:"event_date"`
	EndDate      string `json:"end_date"`
	NumberOfDays int    `json:"number_of_days"`

	GuestCount      int    `json:"guest_count"`
	ContactName     string `json:"contact_name"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`

	PricingMode string  `json:"pricing_mode"`
	UnitPrice   float64 `json:"unit_price"`
	BasePrice   float64 `json:"base_price"`
	ServiceFee  float64 `json:"service_fee"`
	GSTPercent  float64 `json:"gst_percent"`
	GSTAmount   float64 `json:"gst_amount"`
	TotalAmount float64 `json:"total_amount"`

	Inclusions         []string           `json:"inclusions,omitempty"`
	Exclusions         []string           `json:"exclusions,omitempty"`
	CancellationPolicy CancellationPolicy `json:"cancellation_policy"`

	Status       string   `json:"status"`
	CancelReason string   `json:"cancel_reason,omitempty"`
	RefundAmount *float64 `json:"refund_amount,omitempty"`
}

// BookingResponseFromEntity converts entity to API response
func BookingResponseFromEntity(b *Booking) BookingResponse {
	resp := BookingResponse{
		ID:      b.ID,
		UserID:  b.UserID,
		VenueID: b.VenueID,

		VenueName: b.VenueName,
		EventType: b.EventType,

		BookingDate:  b.CreatedAt.Format(time.RFC3339),
		EventDate:    b.EventDate.Format(DateLayout),
		EndDate:      b.EndDate.Format(DateLayout),
		NumberOfDays: b.NumberOfDays,

		GuestCount:   b.GuestCount,
		ContactName:  b.ContactName,
		ContactEmail: b.ContactEmail,

		PricingMode: b.PricingMode,
		UnitPrice:   b.UnitPrice,
		BasePrice:   b.BasePrice,
		ServiceFee:  b.ServiceFee,
		GSTPercent:  b.GSTPercent,
		GSTAmount:   b.GSTAmount,
		TotalAmount: b.TotalAmount,

		Inclusions:         b.Inclusions,
		Exclusions:         b.Exclusions,
		CancellationPolicy: b.Policy(),

		Status: string(b.Status),
	}

	if b.EventID.Valid {
		id := b.EventID.UUID
		resp.EventID = &id
	}
	if b.VenueImage.Valid {
		resp.VenueImage = b.VenueImage.String
	}
	if b.Location.Valid {
		resp.Location = b.Location.String
	}
	if b.ContactPhone.Valid {
		resp.ContactPhone = b.ContactPhone.String
	}
	if b.SpecialRequests.Valid {
		resp.SpecialRequests = b.SpecialRequests.String
	}
	if b.CancelReason.Valid {
		resp.CancelReason = b.CancelReason.String
	}
	if b.RefundAmount.Valid {
		amount := b.RefundAmount.Float64
		resp.RefundAmount = &amount
	}

	return resp
}
