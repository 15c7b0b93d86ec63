package ginserver

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"

	appstats "chillstay/internal/app/stats"
	domainstats "chillstay/internal/domain/stats"
)

// StatsHandler exposes the aggregation service over HTTP. The granularity is
// resolved here, once, from the request's selector combination; the service
// only ever sees the resolved variant.
type StatsHandler struct {
	Service *appstats.Service
	Logger  *slog.Logger
}

// Bookings handles GET /api/v1/admin/statistics/bookings.
// Filters: country, city, and either date_from/date_to (epoch millis) or
// year/quarter/month selectors.
func (h StatsHandler) Bookings(c *gin.Context) {
	g, ok := h.granularityFromRequest(c)
	if !ok {
		return
	}
	report := h.Service.BookingStatistics(c.Request.Context(), appstats.Query{
		Country:     c.Query("country"),
		City:        c.Query("city"),
		Granularity: g,
	})
	c.JSON(http.StatusOK, mapBookingReport(report))
}

// Customers handles GET /api/v1/admin/statistics/customers with
// year/quarter/month selectors.
func (h StatsHandler) Customers(c *gin.Context) {
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	quarter, ok := intParam(c, "quarter")
	if !ok {
		return
	}
	month, ok := intParam(c, "month")
	if !ok {
		return
	}
	g, err := domainstats.FromSelectors(year, quarter, month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report := h.Service.CustomerStatistics(c.Request.Context(), g)
	c.JSON(http.StatusOK, mapCustomerReport(report))
}

func (h StatsHandler) granularityFromRequest(c *gin.Context) (domainstats.Granularity, bool) {
	fromRaw, toRaw := c.Query("date_from"), c.Query("date_to")
	if fromRaw != "" || toRaw != "" {
		if fromRaw == "" || toRaw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_from and date_to must be provided together"})
			return domainstats.Granularity{}, false
		}
		fromMs, err := strconv.ParseInt(fromRaw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_from must be epoch milliseconds"})
			return domainstats.Granularity{}, false
		}
		toMs, err := strconv.ParseInt(toRaw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_to must be epoch milliseconds"})
			return domainstats.Granularity{}, false
		}
		g, err := domainstats.DailyInRange(time.UnixMilli(fromMs), time.UnixMilli(toMs))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return domainstats.Granularity{}, false
		}
		return g, true
	}

	year, ok := intParam(c, "year")
	if !ok {
		return domainstats.Granularity{}, false
	}
	quarter, ok := intParam(c, "quarter")
	if !ok {
		return domainstats.Granularity{}, false
	}
	month, ok := intParam(c, "month")
	if !ok {
		return domainstats.Granularity{}, false
	}
	g, err := domainstats.FromSelectors(year, quarter, month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domainstats.Granularity{}, false
	}
	return g, true
}

func intParam(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return nil, false
	}
	return &n, true
}

type hotelStatsDTO struct {
	HotelID          string  `json:"hotel_id"`
	HotelName        string  `json:"hotel_name"`
	Bookings         int     `json:"bookings"`
	Revenue          float64 `json:"revenue"`
	CancellationRate float64 `json:"cancellation_rate"`
}

type bookingStatisticsDTO struct {
	TotalRevenue     float64                  `json:"total_revenue"`
	TotalBookings    int                      `json:"total_bookings"`
	CancellationRate float64                  `json:"cancellation_rate"`
	BookingsByHotel  map[string]hotelStatsDTO `json:"bookings_by_hotel"`
	PeriodRevenue    map[string]float64       `json:"period_revenue"`
	PeriodLabels     []string                 `json:"period_labels"`
	Status           string                   `json:"status"`
	Causes           []string                 `json:"causes,omitempty"`
}

func mapBookingReport(r domainstats.Report) bookingStatisticsDTO {
	byHotel := make(map[string]hotelStatsDTO, len(r.Statistics.BookingsByHotel))
	for id, s := range r.Statistics.BookingsByHotel {
		byHotel[id] = hotelStatsDTO{
			HotelID:          s.HotelID,
			HotelName:        s.HotelName,
			Bookings:         s.Bookings,
			Revenue:          s.Revenue,
			CancellationRate: s.CancellationRate,
		}
	}
	return bookingStatisticsDTO{
		TotalRevenue:     r.Statistics.TotalRevenue,
		TotalBookings:    r.Statistics.TotalBookings,
		CancellationRate: r.Statistics.CancellationRate,
		BookingsByHotel:  byHotel,
		PeriodRevenue:    r.Statistics.PeriodRevenue,
		PeriodLabels:     r.Statistics.PeriodLabels,
		Status:           string(r.Status),
		Causes:           r.Causes,
	}
}

type customerStatsDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TotalBookings int     `json:"total_bookings"`
	TotalSpent    float64 `json:"total_spent"`
	TotalReviews  int     `json:"total_reviews"`
	MemberSince   string  `json:"member_since"`
}

type customerStatisticsDTO struct {
	TotalRevenue       float64                     `json:"total_revenue"`
	TotalBookings      int                         `json:"total_bookings"`
	TotalCustomers     int                         `json:"total_customers"`
	BookingsByCustomer map[string]customerStatsDTO `json:"bookings_by_customer"`
	PeriodRevenue      map[string]float64          `json:"period_revenue"`
	PeriodLabels       []string                    `json:"period_labels"`
	Status             string                      `json:"status"`
	Causes             []string                    `json:"causes,omitempty"`
}

func mapCustomerReport(r domainstats.CustomerReport) customerStatisticsDTO {
	byCustomer := make(map[string]customerStatsDTO, len(r.Statistics.BookingsByCustomer))
	for id, s := range r.Statistics.BookingsByCustomer {
		byCustomer[id] = customerStatsDTO{
			ID:            s.ID,
			Name:          s.Name,
			TotalBookings: s.TotalBookings,
			TotalSpent:    s.TotalSpent,
			TotalReviews:  s.TotalReviews,
			MemberSince:   s.MemberSince,
		}
	}
	return customerStatisticsDTO{
		TotalRevenue:       r.Statistics.TotalRevenue,
		TotalBookings:      r.Statistics.TotalBookings,
		TotalCustomers:     r.Statistics.TotalCustomers,
		BookingsByCustomer: byCustomer,
		PeriodRevenue:      r.Statistics.PeriodRevenue,
		PeriodLabels:       r.Statistics.PeriodLabels,
		Status:             string(r.Status),
		Causes:             r.Causes,
	}
}

var _ StatsHTTP = StatsHandler{}
