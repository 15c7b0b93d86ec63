package stats

import domainstats "chillstay/internal/domain/stats"

// emptyBookingStatistics builds the zero-valued result for a granularity.
// The label axis matches what a populated run would produce, so callers can
// always render a chart.
func emptyBookingStatistics(g domainstats.Granularity) domainstats.BookingStatistics {
	revenue, labels := zeroSeries(g)
	return domainstats.BookingStatistics{
		BookingsByHotel: map[string]domainstats.HotelBookingStats{},
		PeriodRevenue:   revenue,
		PeriodLabels:    labels,
	}
}

func emptyCustomerStatistics(g domainstats.Granularity) domainstats.CustomerStatistics {
	revenue, labels := zeroSeries(g)
	return domainstats.CustomerStatistics{
		BookingsByCustomer: map[string]domainstats.CustomerStats{},
		PeriodRevenue:      revenue,
		PeriodLabels:       labels,
	}
}

func zeroSeries(g domainstats.Granularity) (map[string]float64, []string) {
	labels := g.Labels()
	revenue := make(map[string]float64, len(labels))
	for _, label := range labels {
		revenue[label] = 0
	}
	return revenue, labels
}
