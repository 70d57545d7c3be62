package booking

import (
	"encoding/json"
	"math"
	"testing"
)

func TestComputeBreakdownPricingModes(t *testing.T) {
	perBooking := ComputeBreakdown(QuoteInput{UnitPrice: 1000, Days: 2, Guests: 5, Mode: PricePerBooking})
	if perBooking.Subtotal != 2000 {
		t.Fatalf("per_booking: expected subtotal 2000, got %v", perBooking.Subtotal)
	}

	perPerson := ComputeBreakdown(QuoteInput{UnitPrice: 1000, Days: 2, Guests: 5, Mode: PricePerPerson})
	if perPerson.Subtotal != 10000 {
		t.Fatalf("per_person: expected subtotal 10000, got %v", perPerson.Subtotal)
	}
}

func TestComputeBreakdownDefaultFeeAndTax(t *testing.T) {
	// subtotal 10000 -> fee 500 (5%), tax 18% of 10500 = 1890, total 12390
	bd := ComputeBreakdown(QuoteInput{UnitPrice: 5000, Days: 2, Guests: 1})

	if bd.Subtotal != 10000 {
		t.Fatalf("expected subtotal 10000, got %v", bd.Subtotal)
	}
	if bd.ServiceFee != 500 {
		t.Fatalf("expected default service fee 500, got %v", bd.ServiceFee)
	}
	if bd.GSTAmount != 1890 {
		t.Fatalf("expected GST 1890, got %v", bd.GSTAmount)
	}
	if bd.Total != 12390 {
		t.Fatalf("expected total 12390, got %v", bd.Total)
	}
}

func TestComputeBreakdownOverrides(t *testing.T) {
	fee := 250.0
	gst := 12.0
	bd := ComputeBreakdown(QuoteInput{UnitPrice: 1000, Days: 3, Guests: 2, ServiceFee: &fee, GSTPercent: &gst})

	if bd.ServiceFee != 250 {
		t.Fatalf("expected flat fee override 250, got %v", bd.ServiceFee)
	}
	if bd.GSTPercent != 12 {
		t.Fatalf("expected GST percent override 12, got %v", bd.GSTPercent)
	}
	// tax applies to subtotal+fee, not subtotal alone
	want := (3000 + 250) * 12.0 / 100
	if bd.GSTAmount != want {
		t.Fatalf("expected GST %v, got %v", want, bd.GSTAmount)
	}
}

func TestComputeBreakdownTotalIsAdditive(t *testing.T) {
	inputs := []QuoteInput{
		{UnitPrice: 0, Days: 0, Guests: 0},
		{UnitPrice: 999.99, Days: 7, Guests: 3, Mode: PricePerPerson},
		{UnitPrice: 25000, Days: 1, Guests: 1},
		{UnitPrice: 123.45, Days: 13, Guests: 250, Mode: PricePerPerson},
	}

	for _, in := range inputs {
		bd := ComputeBreakdown(in)
		sum := bd.Subtotal + bd.ServiceFee + bd.GSTAmount
		if math.Abs(bd.Total-sum) > 1e-9 {
			t.Errorf("total %v is not the sum of components %v", bd.Total, sum)
		}
	}
}

func TestComputeBreakdownClampsDaysAndGuests(t *testing.T) {
	bd := ComputeBreakdown(QuoteInput{UnitPrice: 100, Days: -3, Guests: 0, Mode: PricePerPerson})
	if bd.Days != 1 || bd.Guests != 1 {
		t.Fatalf("expected days and guests clamped to 1, got days=%d guests=%d", bd.Days, bd.Guests)
	}
	if bd.Subtotal != 100 {
		t.Fatalf("expected subtotal 100 after clamping, got %v", bd.Subtotal)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12000", 12000, true},
		{"12000.50", 12000.50, true},
		{"₹25,000", 25000, true},
		{"Rs. 15,000 per day", 15000, true},
		{"INR 8000", 8000, true},
		{"contact for pricing", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParsePrice(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParsePrice(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPriceTextDecodesNumberOrString(t *testing.T) {
	tests := []struct {
		in      string
		want    PriceText
		wantErr bool
	}{
		{`"₹25,000"`, "₹25,000", false},
		{`"12000"`, "12000", false},
		{`12000`, "12000", false},
		{`12000.5`, "12000.5", false},
		{`true`, "", true},
		{`["12000"]`, "", true},
	}

	for _, tt := range tests {
		var p PriceText
		err := json.Unmarshal([]byte(tt.in), &p)
		if (err != nil) != tt.wantErr {
			t.Errorf("unmarshal %s: err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && p != tt.want {
			t.Errorf("unmarshal %s = %q, want %q", tt.in, p, tt.want)
		}
	}

	// A numeric price survives decoding into a request body field
	var body struct {
		Price PriceText `json:"price"`
	}
	if err := json.Unmarshal([]byte(`{"price": 9500}`), &body); err != nil {
		t.Fatalf("numeric price in body: %v", err)
	}
	if got := PriceOrDefault(body.Price.String()); got != 9500 {
		t.Fatalf("expected parsed 9500, got %v", got)
	}
}

func TestPriceOrDefaultLeniency(t *testing.T) {
	// Unparseable prices fall back to the documented default, never an error
	if got := PriceOrDefault("contact for pricing"); got != DefaultBasePrice {
		t.Fatalf("expected fallback %v, got %v", DefaultBasePrice, got)
	}
	if got := PriceOrDefault("₹9,500"); got != 9500 {
		t.Fatalf("expected parsed 9500, got %v", got)
	}
}
