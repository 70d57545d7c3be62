package booking

import (
	"errors"
	"testing"
	"time"
)

func TestReconcileSameDayCountsOne(t *testing.T) {
	dr, err := ReconcileRange("2026-03-15", "2026-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dr.Days != 1 {
		t.Fatalf("expected 1 day for same-day range, got %d", dr.Days)
	}
	if dr.Repaired {
		t.Fatal("same-day range must not be flagged repaired")
	}
}

func TestReconcileRepairsInvertedRange(t *testing.T) {
	dr, err := ReconcileRange("2026-03-20", "2026-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dr.Repaired {
		t.Fatal("inverted range must be flagged repaired")
	}
	if !dr.End.Equal(dr.Start) {
		t.Fatalf("expected end reset to start, got start=%v end=%v", dr.Start, dr.End)
	}
	if dr.Days != 1 {
		t.Fatalf("expected 1 day after repair, got %d", dr.Days)
	}
}

func TestReconcileDayCountMonotonic(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	prev := 0
	for i := 0; i < 40; i++ {
		dr := ReconcileDates(start, start.AddDate(0, 0, i))
		if i == 0 {
			prev = dr.Days
			continue
		}
		if dr.Days != prev+1 {
			t.Fatalf("day %d: expected %d days, got %d", i, prev+1, dr.Days)
		}
		prev = dr.Days
	}
}

func TestReconcileInclusiveCounting(t *testing.T) {
	tests := []struct {
		start, end string
		days       int
	}{
		{"2026-01-01", "2026-01-01", 1},
		{"2026-01-01", "2026-01-02", 2},
		{"2026-01-01", "2026-01-07", 7},
		{"2026-02-27", "2026-03-02", 4}, // leap-adjacent month boundary
		{"2026-12-30", "2027-01-02", 4}, // year boundary
	}

	for _, tt := range tests {
		dr, err := ReconcileRange(tt.start, tt.end)
		if err != nil {
			t.Fatalf("%s..%s: unexpected error: %v", tt.start, tt.end, err)
		}
		if dr.Days != tt.days {
			t.Errorf("%s..%s: expected %d days, got %d", tt.start, tt.end, tt.days, dr.Days)
		}
	}
}

func TestReconcileRejectsUnparseableDates(t *testing.T) {
	for _, pair := range [][2]string{
		{"not-a-date", "2026-01-01"},
		{"2026-01-01", "tomorrow"},
		{"", ""},
		{"2026-13-01", "2026-01-01"},
	} {
		_, err := ReconcileRange(pair[0], pair[1])
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("%q..%q: expected ErrInvalidDate, got %v", pair[0], pair[1], err)
		}
	}
}

func TestReconcileIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, 4, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 4, 2, 0, 1, 0, 0, time.UTC)

	dr := ReconcileDates(start, end)
	if dr.Days != 2 {
		t.Fatalf("expected 2 calendar days regardless of clock times, got %d", dr.Days)
	}
}
