package booking

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PriceText is a price field that source records supply either as a JSON
// number or as a currency-formatted string ("₹25,000"). Decoding keeps the
// raw text; ParsePrice stays the single place that interprets it.
type PriceText string

func (p *PriceText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = PriceText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PriceText(n.String())
	return nil
}

func (p PriceText) String() string { return string(p) }

// PricingMode says whether the unit price is charged once per booking or
// multiplied per guest
type PricingMode string

const (
	PricePerBooking PricingMode = "per_booking"
	PricePerPerson  PricingMode = "per_person"
)

// Placeholder business defaults, kept in one place.
const (
	// DefaultBasePrice is the last-resort daily price when a venue's price
	// field cannot be parsed at all. TODO(pricing): confirm with the pricing
	// team whether unparseable prices should instead hide the venue.
	DefaultBasePrice = 25000.0

	// DefaultServiceFeePercent applies when a venue carries no flat fee
	DefaultServiceFeePercent = 5.0

	// DefaultGSTPercent applies when a venue carries no GST rate
	DefaultGSTPercent = 18.0
)

// ParsePrice extracts a numeric amount from a price that may arrive as a bare
// number ("12000", "12000.50") or a currency-formatted string ("₹25,000",
// "Rs. 12000"). Returns false when no digits are present.
func ParsePrice(raw string) (float64, bool) {
	var b strings.Builder
	seenDigit := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			seenDigit = true
		case r == '.' && seenDigit:
			b.WriteRune(r)
		case r == ',':
			// thousands separator, skip
		}
	}
	if !seenDigit {
		return 0, false
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// PriceOrDefault parses leniently and falls back to DefaultBasePrice.
// Unparseable pricing data is deliberately non-fatal: the original system
// treats "contact for pricing" venues as bookable at the default rate.
func PriceOrDefault(raw string) float64 {
	if v, ok := ParsePrice(raw); ok {
		return v
	}
	return DefaultBasePrice
}

// QuoteInput carries the inputs of a price computation
type QuoteInput struct {
	UnitPrice  float64
	Days       int
	Guests     int
	Mode       PricingMode
	ServiceFee *float64 // flat override; nil means percentage default
	GSTPercent *float64 // nil means DefaultGSTPercent
}

// Breakdown is a fully derived price. Total is always the exact sum of
// Subtotal, ServiceFee and GSTAmount; no rounding happens here.
type Breakdown struct {
	UnitPrice  float64     `json:"unit_price"`
	Days       int         `json:"days"`
	Guests     int         `json:"guests"`
	Mode       PricingMode `json:"pricing_mode"`
	Subtotal   float64     `json:"subtotal"`
	ServiceFee float64     `json:"service_fee"`
	GSTPercent float64     `json:"gst_percent"`
	GSTAmount  float64     `json:"gst_amount"`
	Total      float64     `json:"total_amount"`
}

// ComputeBreakdown derives a price breakdown. Deterministic for a given
// input; days and guests are clamped to a minimum of 1 and a negative unit
// price is treated as zero.
func ComputeBreakdown(in QuoteInput) Breakdown {
	days := in.Days
	if days < 1 {
		days = 1
	}
	guests := in.Guests
	if guests < 1 {
		guests = 1
	}
	mode := in.Mode
	if mode != PricePerPerson {
		mode = PricePerBooking
	}
	unit := in.UnitPrice
	if unit < 0 {
		unit = 0
	}

	subtotal := unit * float64(days)
	if mode == PricePerPerson {
		subtotal *= float64(guests)
	}

	fee := subtotal * DefaultServiceFeePercent / 100
	if in.ServiceFee != nil && *in.ServiceFee >= 0 {
		fee = *in.ServiceFee
	}

	gstPercent := DefaultGSTPercent
	if in.GSTPercent != nil && *in.GSTPercent >= 0 {
		gstPercent = *in.GSTPercent
	}
	gstAmount := (subtotal + fee) * gstPercent / 100

	return Breakdown{
		UnitPrice:  unit,
		Days:       days,
		Guests:     guests,
		Mode:       mode,
		Subtotal:   subtotal,
		ServiceFee: fee,
		GSTPercent: gstPercent,
		GSTAmount:  gstAmount,
		Total:      subtotal + fee + gstAmount,
	}
}
