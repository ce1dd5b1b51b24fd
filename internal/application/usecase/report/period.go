// Package report contains the reporting use cases: aggregated metrics over
// income sources and their transactions.
package report

import (
	"fmt"
	"time"

	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
)

// MonthKeyFormat is the layout for month bucket keys ("YYYY-MM").
const MonthKeyFormat = "2006-01"

// DateFormat is the layout for date filter parameters ("YYYY-MM-DD").
const DateFormat = "2006-01-02"

// DefaultRecentMonths is the window used when a month-relative report is
// requested without an explicit limit.
const DefaultRecentMonths = 6

// Clock abstracts the current time so month-relative reports are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// RangeFilter carries the optional period parameters shared by report
// operations. Precedence: explicit StartDate+EndDate > Limit (recent N
// months) > Year (+Month) > operation default.
type RangeFilter struct {
	Year      *int
	Month     *int
	Limit     *int
	StartDate *string
	EndDate   *string
}

// MonthKeys returns the ordered list of "YYYY-MM" keys covering every month
// touched by the inclusive [start, end] range. A same-month range yields
// exactly one key.
func MonthKeys(start, end time.Time) []string {
	var keys []string
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !current.After(last) {
		keys = append(keys, current.Format(MonthKeyFormat))
		current = current.AddDate(0, 1, 0)
	}
	return keys
}

// MonthBounds returns the inclusive [start, end] instants covering the given
// calendar month. The end carries 23:59:59.999 so timestamped data on the
// last day stays inside the range.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := endOfDay(start.AddDate(0, 1, -1))
	return start, end
}

// PreviousMonth returns the calendar month before the given one, wrapping
// January back to December of the prior year.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// ResolveMonth resolves optional year/month parameters to a concrete target
// month, defaulting to the month containing now.
func ResolveMonth(now time.Time, year, month *int) (int, time.Month, error) {
	y := now.Year()
	m := now.Month()
	if year != nil {
		y = *year
	}
	if month != nil {
		if *month < 1 || *month > 12 {
			return 0, 0, domainerror.NewReportError(
				domainerror.ErrCodeInvalidMonth,
				"month must be between 1 and 12",
				domainerror.ErrInvalidMonth,
			)
		}
		m = time.Month(*month)
	}
	return y, m, nil
}

// ResolveRange resolves a RangeFilter to a concrete [start, end] window using
// the documented precedence. defaultMonths selects the fallback when no
// parameter is set: 0 means the current calendar year, a positive value means
// the recent-N-months window ending today.
func ResolveRange(now time.Time, filter RangeFilter, defaultMonths int) (time.Time, time.Time, error) {
	// Explicit dates win over everything else.
	if filter.StartDate != nil && filter.EndDate != nil {
		start, err := time.Parse(DateFormat, *filter.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, domainerror.NewReportError(
				domainerror.ErrCodeInvalidDateFormat,
				fmt.Sprintf("invalid startDate %q, expected YYYY-MM-DD", *filter.StartDate),
				domainerror.ErrInvalidDateFormat,
			)
		}
		end, err := time.Parse(DateFormat, *filter.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, domainerror.NewReportError(
				domainerror.ErrCodeInvalidDateFormat,
				fmt.Sprintf("invalid endDate %q, expected YYYY-MM-DD", *filter.EndDate),
				domainerror.ErrInvalidDateFormat,
			)
		}
		if start.After(end) {
			return time.Time{}, time.Time{}, domainerror.NewReportError(
				domainerror.ErrCodeInvalidDateRange,
				"startDate must not be after endDate",
				domainerror.ErrInvalidDateRange,
			)
		}
		return start, endOfDay(end), nil
	}

	if filter.Limit != nil {
		if *filter.Limit < 1 {
			return time.Time{}, time.Time{}, domainerror.NewReportError(
				domainerror.ErrCodeInvalidLimit,
				"limit must be a positive number",
				domainerror.ErrInvalidLimit,
			)
		}
		return recentMonths(now, *filter.Limit)
	}

	if filter.Month != nil {
		year, month, err := ResolveMonth(now, filter.Year, filter.Month)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start, end := MonthBounds(year, month)
		return start, end, nil
	}

	if filter.Year != nil {
		start := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := endOfDay(time.Date(*filter.Year, time.December, 31, 0, 0, 0, 0, time.UTC))
		return start, end, nil
	}

	if defaultMonths > 0 {
		return recentMonths(now, defaultMonths)
	}

	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC))
	return start, end, nil
}

// recentMonths returns the window from the first day of the month (n-1)
// months before now's month through the end of today, so the current month is
// always included.
func recentMonths(now time.Time, n int) (time.Time, time.Time, error) {
	firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := firstOfCurrent.AddDate(0, -(n - 1), 0)
	return start, endOfDay(now), nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, time.UTC)
}
