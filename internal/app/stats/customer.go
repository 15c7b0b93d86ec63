package stats

import (
	"context"

	"chillstay/internal/domain/booking"
	domainstats "chillstay/internal/domain/stats"
	"chillstay/internal/domain/user"
)

const memberSinceLayout = "Jan 2006"

type customerCounters struct {
	bookings int
	spent    float64
}

// CustomerStatistics aggregates revenue per customer instead of per hotel.
// It reuses the same load, resolve and bucket pipeline over the user foreign
// key; there is no location predicate on this report.
func (s *Service) CustomerStatistics(ctx context.Context, g domainstats.Granularity) domainstats.CustomerReport {
	all, loadErr := s.Bookings.All(ctx)
	if loadErr != nil && s.Logger != nil {
		s.Logger.Error("booking load failed, reporting degraded customer statistics", "error", loadErr)
	}

	report := domainstats.CustomerReport{Status: domainstats.ReportOK}
	if loadErr != nil {
		report.Status = domainstats.ReportDegraded
		report.Causes = append(report.Causes, "booking load failed: "+loadErr.Error())
	}

	filtered := filterBookings(all, nil, Query{Granularity: g})
	if len(filtered) == 0 {
		if report.Status == domainstats.ReportOK {
			report.Status = domainstats.ReportEmpty
		}
		report.Statistics = emptyCustomerStatistics(g)
		return report
	}

	customers := s.Customers.Resolve(ctx, userIDs(filtered))
	report.Statistics = aggregateCustomers(filtered, customers)
	report.Statistics.PeriodRevenue, report.Statistics.PeriodLabels = periodRevenue(filtered, g, s.Logger)
	return report
}

func aggregateCustomers(filtered []booking.Booking, customers map[string]user.Summary) domainstats.CustomerStatistics {
	var totalRevenue float64
	counters := make(map[string]*customerCounters)

	for _, b := range filtered {
		c := counters[b.UserID]
		if c == nil {
			c = &customerCounters{}
			counters[b.UserID] = c
		}
		c.bookings++
		if !b.RevenueExcluded() {
			totalRevenue += b.TotalPrice
			c.spent += b.TotalPrice
		}
	}

	byCustomer := make(map[string]domainstats.CustomerStats, len(counters))
	for id, c := range counters {
		name := user.UnknownName
		memberSince := ""
		if u, ok := customers[id]; ok {
			name = u.FullName
			if !u.MemberSince.IsZero() {
				memberSince = u.MemberSince.UTC().Format(memberSinceLayout)
			}
		}
		byCustomer[id] = domainstats.CustomerStats{
			ID:            id,
			Name:          name,
			TotalBookings: c.bookings,
			TotalSpent:    c.spent,
			MemberSince:   memberSince,
		}
	}

	return domainstats.CustomerStatistics{
		TotalRevenue:       totalRevenue,
		TotalBookings:      len(filtered),
		TotalCustomers:     len(byCustomer),
		BookingsByCustomer: byCustomer,
	}
}

func userIDs(all []booking.Booking) []string {
	ids := make([]string, 0, len(all))
	for _, b := range all {
		ids = append(ids, b.UserID)
	}
	return ids
}
