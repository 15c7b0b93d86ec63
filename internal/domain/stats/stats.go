package stats

// HotelBookingStats is the per-hotel breakdown computed for one request.
type HotelBookingStats struct {
	HotelID          string
	HotelName        string
	Bookings         int
	Revenue          float64
	CancellationRate float64
}

// BookingStatistics is the assembled result of one aggregation run.
// PeriodLabels defines the display order of the revenue series; every label
// has an entry in PeriodRevenue, possibly zero.
type BookingStatistics struct {
	TotalRevenue     float64
	TotalBookings    int
	CancellationRate float64
	BookingsByHotel  map[string]HotelBookingStats
	PeriodRevenue    map[string]float64
	PeriodLabels     []string
}

// CustomerStats is the per-customer breakdown for the customer report.
type CustomerStats struct {
	ID            string
	Name          string
	TotalBookings int
	TotalSpent    float64
	TotalReviews  int
	MemberSince   string
}

// CustomerStatistics aggregates booking revenue by customer instead of hotel.
type CustomerStatistics struct {
	TotalRevenue       float64
	TotalBookings      int
	TotalCustomers     int
	BookingsByCustomer map[string]CustomerStats
	PeriodRevenue      map[string]float64
	PeriodLabels       []string
}

// ReportStatus distinguishes a genuinely empty dataset from one the engine
// could not load. Statistics are well-formed in every case.
type ReportStatus string

const (
	ReportOK       ReportStatus = "ok"
	ReportEmpty    ReportStatus = "empty"
	ReportDegraded ReportStatus = "degraded"
)

// Report wraps booking statistics with the outcome of producing them.
type Report struct {
	Statistics BookingStatistics
	Status     ReportStatus
	Causes     []string
}

// CustomerReport wraps customer statistics the same way.
type CustomerReport struct {
	Statistics CustomerStatistics
	Status     ReportStatus
	Causes     []string
}
