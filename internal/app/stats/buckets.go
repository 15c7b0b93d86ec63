package stats

import (
	"log/slog"

	"chillstay/internal/domain/booking"
	domainstats "chillstay/internal/domain/stats"
)

// periodRevenue sums non-excluded revenue into the bucket axis of the
// granularity. Bookings outside the axis (out-of-window years, other months)
// are dropped from the series only; overall totals already counted them.
// A zero created-at means the source timestamp never parsed, so the booking
// is skipped here with a diagnostic.
func periodRevenue(filtered []booking.Booking, g domainstats.Granularity, logger *slog.Logger) (map[string]float64, []string) {
	labels := g.Labels()
	series := make(map[string]float64, len(labels))
	for _, label := range labels {
		series[label] = 0
	}

	for _, b := range filtered {
		if b.RevenueExcluded() {
			continue
		}
		if b.CreatedAt.IsZero() {
			if logger != nil {
				logger.Warn("booking has no usable created-at, skipping in series", "booking_id", b.ID)
			}
			continue
		}
		label, ok := g.BucketLabel(b.CreatedAt)
		if !ok {
			continue
		}
		if _, ok := series[label]; !ok {
			continue
		}
		series[label] += b.TotalPrice
	}
	return series, labels
}
