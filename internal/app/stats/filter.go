package stats

import (
	"strings"

	"chillstay/internal/domain/booking"
	"chillstay/internal/domain/hotel"
)

// filterBookings applies the date and location predicates, preserving input
// order. The date window comes from the granularity and is inclusive at both
// ends, compared at millisecond precision. When a location predicate is
// active, a booking whose hotel is not in the resolved map is excluded.
func filterBookings(all []booking.Booking, hotels map[string]hotel.Summary, q Query) []booking.Booking {
	country := strings.TrimSpace(q.Country)
	city := strings.TrimSpace(q.City)
	byLocation := country != "" || city != ""

	from, to, bounded := q.Granularity.Range()
	var fromMs, toMs int64
	if bounded {
		fromMs, toMs = from.UnixMilli(), to.UnixMilli()
	}

	out := make([]booking.Booking, 0, len(all))
	for _, b := range all {
		if bounded {
			ms := b.CreatedAt.UnixMilli()
			if ms < fromMs || ms > toMs {
				continue
			}
		}
		if byLocation {
			h, ok := hotels[b.HotelID]
			if !ok {
				continue
			}
			if country != "" && !strings.EqualFold(h.Country, country) {
				continue
			}
			if city != "" && !strings.EqualFold(h.City, city) {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}
