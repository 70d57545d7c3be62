package booking

import "testing"

func TestRefundAmountDefaultPolicy(t *testing.T) {
	policy := DefaultCancellationPolicy()

	tests := []struct {
		name       string
		daysBefore int
		want       float64
	}{
		{"well ahead gets full refund", 30, 10000},
		{"exactly at full threshold", 7, 10000},
		{"inside partial window", 5, 5000},
		{"exactly at partial threshold", 3, 5000},
		{"too late for any refund", 2, 0},
		{"day of event", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.RefundAmount(10000, tt.daysBefore); got != tt.want {
				t.Errorf("RefundAmount(10000, %d) = %v, want %v", tt.daysBefore, got, tt.want)
			}
		})
	}
}

func TestRefundAmountCustomPolicy(t *testing.T) {
	policy := CancellationPolicy{FullRefundDays: 14, PartialRefundDays: 7, PartialRefundPercent: 25}

	if got := policy.RefundAmount(8000, 14); got != 8000 {
		t.Fatalf("expected full refund 8000, got %v", got)
	}
	if got := policy.RefundAmount(8000, 10); got != 2000 {
		t.Fatalf("expected 25%% refund 2000, got %v", got)
	}
	if got := policy.RefundAmount(8000, 6); got != 0 {
		t.Fatalf("expected no refund, got %v", got)
	}
}

func TestRefundAmountNormalizesBadPolicy(t *testing.T) {
	// Zero-value policy behaves as the default; an out-of-range percent clamps
	var zero CancellationPolicy
	if got := zero.RefundAmount(1000, 10); got != 1000 {
		t.Fatalf("zero policy should act as default, got %v", got)
	}
	if got := zero.RefundAmount(1000, 5); got != 500 {
		t.Fatalf("zero policy partial should be 50%%, got %v", got)
	}

	over := CancellationPolicy{FullRefundDays: 10, PartialRefundDays: 5, PartialRefundPercent: 180}
	if got := over.RefundAmount(1000, 6); got != 1000 {
		t.Fatalf("percent over 100 should clamp, got %v", got)
	}
}

func TestRefundAmountNonPositiveTotal(t *testing.T) {
	policy := DefaultCancellationPolicy()
	if got := policy.RefundAmount(0, 30); got != 0 {
		t.Fatalf("zero total must refund zero, got %v", got)
	}
	if got := policy.RefundAmount(-100, 30); got != 0 {
		t.Fatalf("negative total must refund zero, got %v", got)
	}
}
