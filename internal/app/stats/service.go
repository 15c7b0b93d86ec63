// Package stats computes booking-revenue statistics: a filter, aggregate and
// bucket pipeline over the full booking collection, with hotel and customer
// lookups resolved through batched, cached fan-out.
package stats

import (
	"context"
	"log/slog"

	"chillstay/internal/domain/booking"
	"chillstay/internal/domain/hotel"
	domainstats "chillstay/internal/domain/stats"
	"chillstay/internal/domain/user"
)

// BookingStore loads the raw booking collection. Per-record decode failures
// are dropped inside the store; a non-nil error marks the load as degraded.
type BookingStore interface {
	All(ctx context.Context) ([]booking.Booking, error)
}

// HotelResolver resolves hotel ids into summaries, placeholders included.
type HotelResolver interface {
	Resolve(ctx context.Context, ids []string) map[string]hotel.Summary
}

// CustomerResolver resolves user ids into customer summaries.
type CustomerResolver interface {
	Resolve(ctx context.Context, ids []string) map[string]user.Summary
}

// Query carries the filters of one booking-statistics request. Country and
// city are optional case-insensitive exact matches.
type Query struct {
	Country     string
	City        string
	Granularity domainstats.Granularity
}

// Service is the aggregation engine. It never returns an error: failures
// degrade to well-formed zero or partial results with the cause recorded on
// the report.
type Service struct {
	Bookings  BookingStore
	Hotels    HotelResolver
	Customers CustomerResolver
	Logger    *slog.Logger
}

// BookingStatistics runs the full pipeline for one request: bulk load,
// hotel resolution, filtering, metrics and the bucketed revenue series.
// Hotel resolution completes before any filtering so location predicates
// never observe partial data.
func (s *Service) BookingStatistics(ctx context.Context, q Query) domainstats.Report {
	all, loadErr := s.Bookings.All(ctx)
	if loadErr != nil && s.Logger != nil {
		s.Logger.Error("booking load failed, reporting degraded statistics", "error", loadErr)
	}

	report := domainstats.Report{Status: domainstats.ReportOK}
	if loadErr != nil {
		report.Status = domainstats.ReportDegraded
		report.Causes = append(report.Causes, "booking load failed: "+loadErr.Error())
	}

	if len(all) == 0 {
		if report.Status == domainstats.ReportOK {
			report.Status = domainstats.ReportEmpty
		}
		report.Statistics = emptyBookingStatistics(q.Granularity)
		return report
	}

	hotels := s.Hotels.Resolve(ctx, hotelIDs(all))
	filtered := filterBookings(all, hotels, q)
	if len(filtered) == 0 {
		if report.Status == domainstats.ReportOK {
			report.Status = domainstats.ReportEmpty
		}
		report.Statistics = emptyBookingStatistics(q.Granularity)
		return report
	}

	report.Statistics = aggregateBookings(filtered, hotels)
	report.Statistics.PeriodRevenue, report.Statistics.PeriodLabels = periodRevenue(filtered, q.Granularity, s.Logger)

	if s.Logger != nil {
		s.Logger.Debug("booking statistics computed",
			"granularity", q.Granularity.String(),
			"loaded", len(all),
			"filtered", len(filtered),
			"revenue", report.Statistics.TotalRevenue)
	}
	return report
}

func hotelIDs(all []booking.Booking) []string {
	ids := make([]string, 0, len(all))
	for _, b := range all {
		ids = append(ids, b.HotelID)
	}
	return ids
}
