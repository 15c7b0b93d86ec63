package ginserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chillstay/internal/app/resolve"
	appstats "chillstay/internal/app/stats"
	"chillstay/internal/domain/booking"
	"chillstay/internal/domain/hotel"
	"chillstay/internal/domain/user"
	"chillstay/internal/infra/cache"
	"chillstay/internal/infra/config"
	"chillstay/internal/infra/obs"
	"chillstay/internal/infra/storage/memory"
)

func newTestServer(t *testing.T) (http.Handler, *memory.BookingStore, *memory.HotelStore) {
	t.Helper()

	bookings := memory.NewBookingStore()
	hotels := memory.NewHotelStore(10)
	users := memory.NewUserStore(10)

	svc := &appstats.Service{
		Bookings: bookings,
		Hotels: &resolve.Resolver[hotel.Summary]{
			Store:       hotels,
			Cache:       cache.New[string, hotel.Summary](),
			Key:         func(h hotel.Summary) string { return h.ID },
			Placeholder: hotel.Placeholder,
		},
		Customers: &resolve.Resolver[user.Summary]{
			Store:       users,
			Cache:       cache.New[string, user.Summary](),
			Key:         func(u user.Summary) string { return u.ID },
			Placeholder: user.Placeholder,
		},
	}

	server := NewServer(config.Config{Env: "test", HTTPAddr: ":0"}, obs.Middleware{}, obs.HealthHandlers{}, Handlers{
		Stats: StatsHandler{Service: svc},
	})
	return server.Handler, bookings, hotels
}

func doGet(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	h.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestBookingsEndpointWeeklyGranularity(t *testing.T) {
	h, bookings, hotels := newTestServer(t)
	hotels.Seed(hotel.Summary{ID: "H1", Name: "Seaside", City: "Da Nang", Country: "Vietnam"})
	bookings.Seed(booking.Booking{
		ID: "b1", UserID: "u1", HotelID: "H1", TotalPrice: 90,
		Status:    booking.StatusConfirmed,
		CreatedAt: time.Date(2025, time.February, 28, 10, 0, 0, 0, time.UTC),
	})

	rec, body := doGet(t, h, "/api/v1/admin/statistics/bookings?year=2025&month=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, 90.0, body["total_revenue"])

	labels, ok := body["period_labels"].([]any)
	require.True(t, ok)
	require.Len(t, labels, 4)

	revenue := body["period_revenue"].(map[string]any)
	assert.Equal(t, 90.0, revenue["Week 4"])
}

func TestBookingsEndpointDateRange(t *testing.T) {
	h, bookings, _ := newTestServer(t)
	day := time.Date(2025, time.June, 14, 9, 0, 0, 0, time.UTC)
	bookings.Seed(booking.Booking{
		ID: "b1", UserID: "u1", HotelID: "H1", TotalPrice: 50,
		Status: booking.StatusConfirmed, CreatedAt: day,
	})

	ms := day.UnixMilli()
	rec, body := doGet(t, h,
		"/api/v1/admin/statistics/bookings?date_from="+itoa(ms)+"&date_to="+itoa(ms))

	require.Equal(t, http.StatusOK, rec.Code)
	labels := body["period_labels"].([]any)
	require.Len(t, labels, 1)
	assert.Equal(t, "Jun 14", labels[0])
}

func TestBookingsEndpointRejectsBadSelectors(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec, _ := doGet(t, h, "/api/v1/admin/statistics/bookings?year=2025&quarter=7")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doGet(t, h, "/api/v1/admin/statistics/bookings?year=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doGet(t, h, "/api/v1/admin/statistics/bookings?date_from=123")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomersEndpoint(t *testing.T) {
	h, bookings, _ := newTestServer(t)
	bookings.Seed(booking.Booking{
		ID: "b1", UserID: "u1", HotelID: "H1", TotalPrice: 70,
		Status:    booking.StatusCompleted,
		CreatedAt: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	})

	rec, body := doGet(t, h, "/api/v1/admin/statistics/customers?year=2025")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 70.0, body["total_revenue"])
	assert.Equal(t, 1.0, body["total_customers"])
	byCustomer := body["bookings_by_customer"].(map[string]any)
	u1 := byCustomer["u1"].(map[string]any)
	assert.Equal(t, user.UnknownName, u1["name"])
}

func TestHealthEndpoints(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec, _ := doGet(t, h, "/livez")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doGet(t, h, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
