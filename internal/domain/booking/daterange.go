package booking

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for booking dates (ISO-8601 calendar date)
const DateLayout = "2006-01-02"

// DateRange is an inclusive span of calendar days. Both the start and the end
// day are billed, so a same-day range counts as one day.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
	Days  int       `json:"days"`

	// Repaired is true when the supplied end date preceded the start date
	// and was reset to the start date.
	Repaired bool `json:"repaired,omitempty"`
}

// ReconcileDates normalizes a pair of calendar dates into an inclusive range.
// An end before the start is repaired by resetting it to the start. Pure:
// never consults the clock.
func ReconcileDates(start, end time.Time) DateRange {
	start = toCalendarDay(start)
	end = toCalendarDay(end)

	repaired := false
	if end.Before(start) {
		end = start
		repaired = true
	}

	days := int(end.Sub(start).Hours()/24) + 1

	return DateRange{
		Start:    start,
		End:      end,
		Days:     days,
		Repaired: repaired,
	}
}

// ReconcileRange parses two ISO-8601 date strings and reconciles them.
// A string that fails to parse yields ErrInvalidDate wrapped with the field
// name; callers keep their previous range in that case.
func ReconcileRange(startStr, endStr string) (DateRange, error) {
	start, err := time.ParseInLocation(DateLayout, startStr, time.UTC)
	if err != nil {
		return DateRange{}, fmt.Errorf("start_date %q: %w", startStr, ErrInvalidDate)
	}
	end, err := time.ParseInLocation(DateLayout, endStr, time.UTC)
	if err != nil {
		return DateRange{}, fmt.Errorf("end_date %q: %w", endStr, ErrInvalidDate)
	}
	return ReconcileDates(start, end), nil
}

// toCalendarDay drops any time-of-day component, keeping only the UTC date
func toCalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
