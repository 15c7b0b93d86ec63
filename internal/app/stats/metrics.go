package stats

import (
	"chillstay/internal/domain/booking"
	"chillstay/internal/domain/hotel"
	domainstats "chillstay/internal/domain/stats"
)

type hotelCounters struct {
	bookings  int
	cancelled int
	revenue   float64
}

// aggregateBookings makes a single pass over the filtered set: total revenue
// (revenue-excluded statuses contribute nothing), booking count, overall
// cancellation rate and the per-hotel breakdown. The period series is filled
// in separately.
func aggregateBookings(filtered []booking.Booking, hotels map[string]hotel.Summary) domainstats.BookingStatistics {
	var totalRevenue float64
	var totalCancelled int
	counters := make(map[string]*hotelCounters)

	for _, b := range filtered {
		c := counters[b.HotelID]
		if c == nil {
			c = &hotelCounters{}
			counters[b.HotelID] = c
		}
		c.bookings++
		if b.Cancelled() {
			totalCancelled++
			c.cancelled++
		}
		if !b.RevenueExcluded() {
			totalRevenue += b.TotalPrice
			c.revenue += b.TotalPrice
		}
	}

	byHotel := make(map[string]domainstats.HotelBookingStats, len(counters))
	for id, c := range counters {
		name := hotel.UnknownName
		if h, ok := hotels[id]; ok {
			name = h.Name
		}
		byHotel[id] = domainstats.HotelBookingStats{
			HotelID:          id,
			HotelName:        name,
			Bookings:         c.bookings,
			Revenue:          c.revenue,
			CancellationRate: rate(c.cancelled, c.bookings),
		}
	}

	return domainstats.BookingStatistics{
		TotalRevenue:     totalRevenue,
		TotalBookings:    len(filtered),
		CancellationRate: rate(totalCancelled, len(filtered)),
		BookingsByHotel:  byHotel,
	}
}

func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
