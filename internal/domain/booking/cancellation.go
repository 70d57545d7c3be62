package booking

// CancellationPolicy is the refund-eligibility terms snapshotted onto a
// booking at creation time. Later edits to the venue never change an existing
// booking's terms.
type CancellationPolicy struct {
	FullRefundDays       int     `json:"full_refund_days"`
	PartialRefundDays    int     `json:"partial_refund_days"`
	PartialRefundPercent float64 `json:"partial_refund_percent"`
}

// Placeholder policy defaults, pending confirmation from the business
const (
	DefaultFullRefundDays       = 7
	DefaultPartialRefundDays    = 3
	DefaultPartialRefundPercent = 50.0
)

// DefaultCancellationPolicy returns the platform-wide fallback policy
func DefaultCancellationPolicy() CancellationPolicy {
	return CancellationPolicy{
		FullRefundDays:       DefaultFullRefundDays,
		PartialRefundDays:    DefaultPartialRefundDays,
		PartialRefundPercent: DefaultPartialRefundPercent,
	}
}

// normalized fills zero-value thresholds with the defaults and clamps the
// partial percent into [0,100]
func (p CancellationPolicy) normalized() CancellationPolicy {
	if p.FullRefundDays <= 0 {
		p.FullRefundDays = DefaultFullRefundDays
	}
	if p.PartialRefundDays <= 0 {
		p.PartialRefundDays = DefaultPartialRefundDays
	}
	if p.PartialRefundPercent <= 0 {
		p.PartialRefundPercent = DefaultPartialRefundPercent
	}
	if p.PartialRefundPercent > 100 {
		p.PartialRefundPercent = 100
	}
	return p
}

// RefundAmount computes the refund for a cancellation made daysBeforeEvent
// calendar days ahead of the event date. At or beyond the full-refund
// threshold the whole total comes back; between the thresholds the partial
// percent applies; inside the partial window nothing is refunded.
func (p CancellationPolicy) RefundAmount(total float64, daysBeforeEvent int) float64 {
	if total <= 0 {
		return 0
	}
	n := p.normalized()
	switch {
	case daysBeforeEvent >= n.FullRefundDays:
		return total
	case daysBeforeEvent >= n.PartialRefundDays:
		return total * n.PartialRefundPercent / 100
	default:
		return 0
	}
}
