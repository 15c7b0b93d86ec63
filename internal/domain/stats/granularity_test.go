package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestFromSelectorsPrecedence(t *testing.T) {
	year, quarter, month := 2025, 2, 7

	g, err := FromSelectors(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "yearly", g.String())

	g, err = FromSelectors(&year, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "monthly year=2025", g.String())

	g, err = FromSelectors(&year, &quarter, nil)
	require.NoError(t, err)
	assert.Equal(t, "monthly year=2025 quarter=2", g.String())

	// month wins over quarter
	g, err = FromSelectors(&year, &quarter, &month)
	require.NoError(t, err)
	assert.Equal(t, "weekly year=2025 month=7", g.String())
}

func TestFromSelectorsValidation(t *testing.T) {
	year := 2025
	bad := 5
	_, err := FromSelectors(&year, &bad, nil)
	assert.ErrorIs(t, err, ErrInvalidQuarter)

	bad = 13
	_, err = FromSelectors(&year, nil, &bad)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestYearlyHasNoDateWindow(t *testing.T) {
	_, _, ok := Yearly().Range()
	assert.False(t, ok)
}

func TestMonthlyInYearRange(t *testing.T) {
	from, to, ok := MonthlyInYear(2025).Range()
	require.True(t, ok)
	assert.Equal(t, date(2025, time.January, 1, 0, 0), from)
	assert.Equal(t, date(2026, time.January, 1, 0, 0).Add(-time.Millisecond), to)
}

func TestQuarterRangeBoundaries(t *testing.T) {
	g, err := MonthlyInQuarter(2025, 4)
	require.NoError(t, err)

	from, to, ok := g.Range()
	require.True(t, ok)
	assert.Equal(t, date(2025, time.October, 1, 0, 0), from)
	// last instant of December, not the first of January
	assert.Equal(t, date(2026, time.January, 1, 0, 0).Add(-time.Millisecond), to)
}

func TestWeeklyRangeCoversLeapFebruary(t *testing.T) {
	g, err := WeeklyInMonth(2024, 2)
	require.NoError(t, err)

	from, to, ok := g.Range()
	require.True(t, ok)
	assert.Equal(t, date(2024, time.February, 1, 0, 0), from)
	assert.Equal(t, date(2024, time.March, 1, 0, 0).Add(-time.Millisecond), to)
}

func TestYearlyLabels(t *testing.T) {
	assert.Equal(t, []string{"2024", "2025", "2026"}, Yearly().Labels())
	assert.Equal(t, []string{"2030", "2031"}, Yearly(2030, 2031).Labels())
}

func TestMonthlyLabels(t *testing.T) {
	labels := MonthlyInYear(2025).Labels()
	require.Len(t, labels, 12)
	assert.Equal(t, "Jan 2025", labels[0])
	assert.Equal(t, "Dec 2025", labels[11])

	g, err := MonthlyInQuarter(2025, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jul 2025", "Aug 2025", "Sep 2025"}, g.Labels())
}

func TestWeeklyLabelsNonLeapFebruary(t *testing.T) {
	g, err := WeeklyInMonth(2025, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Week 1", "Week 2", "Week 3", "Week 4"}, g.Labels())

	label, ok := g.BucketLabel(date(2025, time.February, 28, 12, 0))
	require.True(t, ok)
	assert.Equal(t, "Week 4", label)
}

func TestWeeklyLabelsLongMonths(t *testing.T) {
	g, err := WeeklyInMonth(2024, 2) // leap year, 29 days
	require.NoError(t, err)
	assert.Len(t, g.Labels(), 5)

	g, err = WeeklyInMonth(2025, 7) // 31 days
	require.NoError(t, err)
	assert.Len(t, g.Labels(), 5)

	label, ok := g.BucketLabel(date(2025, time.July, 31, 23, 59))
	require.True(t, ok)
	assert.Equal(t, "Week 5", label)

	label, ok = g.BucketLabel(date(2025, time.July, 1, 0, 0))
	require.True(t, ok)
	assert.Equal(t, "Week 1", label)
}

func TestWeeklyExcludesOtherMonths(t *testing.T) {
	g, err := WeeklyInMonth(2025, 2)
	require.NoError(t, err)

	_, ok := g.BucketLabel(date(2025, time.March, 1, 0, 0))
	assert.False(t, ok)

	_, ok = g.BucketLabel(date(2024, time.February, 10, 0, 0))
	assert.False(t, ok)
}

func TestDailyLabelsSingleDay(t *testing.T) {
	day := date(2025, time.June, 14, 10, 30)
	g, err := DailyInRange(day, day)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jun 14"}, g.Labels())
}

func TestDailyLabelsInclusiveSpan(t *testing.T) {
	g, err := DailyInRange(date(2025, time.June, 29, 8, 0), date(2025, time.July, 2, 20, 0))
	require.NoError(t, err)

	assert.Equal(t, []string{"Jun 29", "Jun 30", "Jul 01", "Jul 02"}, g.Labels())
}

func TestDailyRejectsInvertedRange(t *testing.T) {
	_, err := DailyInRange(date(2025, time.June, 2, 0, 0), date(2025, time.June, 1, 0, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestBucketLabelFormats(t *testing.T) {
	ts := date(2025, time.June, 14, 9, 0)

	label, _ := Yearly().BucketLabel(ts)
	assert.Equal(t, "2025", label)

	label, _ = MonthlyInYear(2025).BucketLabel(ts)
	assert.Equal(t, "Jun 2025", label)

	g, err := DailyInRange(ts, ts)
	require.NoError(t, err)
	label, _ = g.BucketLabel(ts)
	assert.Equal(t, "Jun 14", label)
}
