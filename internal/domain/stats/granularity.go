package stats

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrInvalidQuarter = errors.New("stats: quarter must be between 1 and 4")
	ErrInvalidMonth   = errors.New("stats: month must be between 1 and 12")
	ErrInvalidRange   = errors.New("stats: date range start is after end")
)

// DefaultYearlyWindow is the label window used by the yearly series. Bookings
// created outside the window stay in the overall totals but are truncated from
// the bucketed series.
var DefaultYearlyWindow = []int{2024, 2025, 2026}

const (
	yearLayout  = "2006"
	monthLayout = "Jan 2006"
	dayLayout   = "Jan 02"
)

type granularityKind int

const (
	kindYearly granularityKind = iota
	kindMonthlyInYear
	kindMonthlyInQuarter
	kindWeeklyInMonth
	kindDailyInRange
)

// Granularity is the time-bucketing resolution of a statistics request,
// resolved once at the API boundary and dispatched exhaustively afterwards.
// All calendar arithmetic is done in UTC.
type Granularity struct {
	kind    granularityKind
	window  []int
	year    int
	quarter int
	month   time.Month
	from    time.Time
	to      time.Time
}

// Yearly buckets revenue per year over a fixed window. Without arguments the
// default window applies.
func Yearly(window ...int) Granularity {
	if len(window) == 0 {
		window = DefaultYearlyWindow
	}
	return Granularity{kind: kindYearly, window: window}
}

// MonthlyInYear buckets revenue per calendar month of the given year.
func MonthlyInYear(year int) Granularity {
	return Granularity{kind: kindMonthlyInYear, year: year}
}

// MonthlyInQuarter buckets revenue per month of the given quarter.
func MonthlyInQuarter(year, quarter int) (Granularity, error) {
	if quarter < 1 || quarter > 4 {
		return Granularity{}, ErrInvalidQuarter
	}
	return Granularity{kind: kindMonthlyInQuarter, year: year, quarter: quarter}, nil
}

// WeeklyInMonth buckets revenue per seven-day week of the given month.
func WeeklyInMonth(year, month int) (Granularity, error) {
	if month < 1 || month > 12 {
		return Granularity{}, ErrInvalidMonth
	}
	return Granularity{kind: kindWeeklyInMonth, year: year, month: time.Month(month)}, nil
}

// DailyInRange buckets revenue per calendar day from from to to inclusive.
func DailyInRange(from, to time.Time) (Granularity, error) {
	from, to = from.UTC(), to.UTC()
	if from.After(to) {
		return Granularity{}, ErrInvalidRange
	}
	return Granularity{kind: kindDailyInRange, from: from, to: to}, nil
}

// FromSelectors resolves the year/quarter/month selector combination into a
// granularity. Precedence: no year means yearly; a month wins over a quarter;
// a bare year means monthly within that year.
func FromSelectors(year, quarter, month *int) (Granularity, error) {
	switch {
	case year == nil:
		return Yearly(), nil
	case month != nil:
		return WeeklyInMonth(*year, *month)
	case quarter != nil:
		return MonthlyInQuarter(*year, *quarter)
	default:
		return MonthlyInYear(*year), nil
	}
}

// Range returns the inclusive filter window implied by the granularity in
// epoch time. The yearly series applies no date predicate at all, so ok is
// false for it. Period ends are computed by adding one unit and subtracting a
// millisecond, which keeps month and quarter boundaries exact.
func (g Granularity) Range() (from, to time.Time, ok bool) {
	switch g.kind {
	case kindYearly:
		return time.Time{}, time.Time{}, false
	case kindMonthlyInYear:
		from = time.Date(g.year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(1, 0, 0).Add(-time.Millisecond), true
	case kindMonthlyInQuarter:
		first := time.Month((g.quarter-1)*3 + 1)
		from = time.Date(g.year, first, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 3, 0).Add(-time.Millisecond), true
	case kindWeeklyInMonth:
		from = time.Date(g.year, g.month, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, 0).Add(-time.Millisecond), true
	default:
		return g.from, g.to, true
	}
}

// Labels returns the ordered bucket axis for the granularity. The axis is
// never empty: a single-day range still yields one label.
func (g Granularity) Labels() []string {
	switch g.kind {
	case kindYearly:
		labels := make([]string, 0, len(g.window))
		for _, y := range g.window {
			labels = append(labels, strconv.Itoa(y))
		}
		return labels
	case kindMonthlyInYear:
		labels := make([]string, 0, 12)
		for m := time.January; m <= time.December; m++ {
			labels = append(labels, monthLabel(g.year, m))
		}
		return labels
	case kindMonthlyInQuarter:
		first := time.Month((g.quarter-1)*3 + 1)
		labels := make([]string, 0, 3)
		for i := 0; i < 3; i++ {
			labels = append(labels, monthLabel(g.year, first+time.Month(i)))
		}
		return labels
	case kindWeeklyInMonth:
		weeks := (daysInMonth(g.year, g.month) + 6) / 7
		labels := make([]string, 0, weeks)
		for w := 1; w <= weeks; w++ {
			labels = append(labels, fmt.Sprintf("Week %d", w))
		}
		return labels
	default:
		var labels []string
		last := startOfDay(g.to)
		for d := startOfDay(g.from); !d.After(last); d = d.AddDate(0, 0, 1) {
			labels = append(labels, d.Format(dayLayout))
		}
		return labels
	}
}

// BucketLabel maps an instant to its bucket label. ok is false when the
// instant falls outside the series entirely; such bookings stay in overall
// totals but are dropped from the bucketed revenue. Callers still check the
// label against the axis, since a formatted label can fall outside a fixed
// window.
func (g Granularity) BucketLabel(t time.Time) (string, bool) {
	t = t.UTC()
	switch g.kind {
	case kindYearly:
		return strconv.Itoa(t.Year()), true
	case kindMonthlyInYear, kindMonthlyInQuarter:
		return t.Format(monthLayout), true
	case kindWeeklyInMonth:
		if t.Year() != g.year || t.Month() != g.month {
			return "", false
		}
		return fmt.Sprintf("Week %d", (t.Day()-1)/7+1), true
	default:
		return t.Format(dayLayout), true
	}
}

// String renders the granularity for diagnostics.
func (g Granularity) String() string {
	switch g.kind {
	case kindYearly:
		return "yearly"
	case kindMonthlyInYear:
		return fmt.Sprintf("monthly year=%d", g.year)
	case kindMonthlyInQuarter:
		return fmt.Sprintf("monthly year=%d quarter=%d", g.year, g.quarter)
	case kindWeeklyInMonth:
		return fmt.Sprintf("weekly year=%d month=%d", g.year, int(g.month))
	default:
		return fmt.Sprintf("daily from=%s to=%s", g.from.Format(time.RFC3339), g.to.Format(time.RFC3339))
	}
}

func monthLabel(year int, m time.Month) string {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Format(monthLayout)
}

func daysInMonth(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
