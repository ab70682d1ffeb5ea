package domain

import (
	"errors"
	"time"

	"github.com/mdsai/analytics-api/pkg/utils"
)

type ReportRange string

const (
	RangeMonthToDate   ReportRange = "mtd"
	RangeQuarterToDate ReportRange = "qtd"
	RangeYearToDate    ReportRange = "ytd"
	RangeLastMonth     ReportRange = "last-month"
	RangeLastQuarter   ReportRange = "last-quarter"
	RangeLastYear      ReportRange = "last-year"
)

var ErrUnknownRange = errors.New("unknown report range")

// ParseReportRange validates the range query parameter. An empty value
// defaults to month-to-date, matching the dashboard's initial view.
func ParseReportRange(raw string) (ReportRange, error) {
	if raw == "" {
		return RangeMonthToDate, nil
	}

	switch r := ReportRange(raw); r {
	case RangeMonthToDate, RangeQuarterToDate, RangeYearToDate,
		RangeLastMonth, RangeLastQuarter, RangeLastYear:
		return r, nil
	}

	return "", ErrUnknownRange
}

func (r ReportRange) String() string {
	return string(r)
}

// Bounds returns the inclusive date window the range covers relative to the
// application date. To-date ranges end on the application date itself.
func (r ReportRange) Bounds(now time.Time) (time.Time, time.Time) {
	switch r {
	case RangeQuarterToDate:
		return utils.QuarterStart(now), now
	case RangeYearToDate:
		return utils.YearStart(now), now
	case RangeLastMonth:
		lastMonth := utils.MonthStart(now).AddDate(0, -1, 0)
		return lastMonth, utils.MonthEnd(lastMonth)
	case RangeLastQuarter:
		lastQuarter := utils.QuarterStart(now).AddDate(0, -3, 0)
		return lastQuarter, utils.MonthEnd(lastQuarter.AddDate(0, 2, 0))
	case RangeLastYear:
		lastYear := utils.YearStart(now).AddDate(-1, 0, 0)
		return lastYear, time.Date(lastYear.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
	}

	return utils.MonthStart(now), now
}

// PreviousBounds returns the window immediately before Bounds, with the same
// elapsed length for to-date ranges so comparisons stay like-for-like.
func (r ReportRange) PreviousBounds(now time.Time) (time.Time, time.Time) {
	switch r {
	case RangeQuarterToDate:
		prevQuarter := utils.QuarterStart(now).AddDate(0, -3, 0)
		monthOffset := int(now.Month()) - int(utils.QuarterStart(now).Month())
		return prevQuarter, clampToMonth(prevQuarter.AddDate(0, monthOffset, 0), now.Day())
	case RangeYearToDate:
		prevYear := utils.YearStart(now).AddDate(-1, 0, 0)
		endMonth := time.Date(prevYear.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return prevYear, clampToMonth(endMonth, now.Day())
	case RangeLastMonth:
		base := utils.MonthStart(now).AddDate(0, -2, 0)
		return base, utils.MonthEnd(base)
	case RangeLastQuarter:
		base := utils.QuarterStart(now).AddDate(0, -6, 0)
		return base, utils.MonthEnd(base.AddDate(0, 2, 0))
	case RangeLastYear:
		base := utils.YearStart(now).AddDate(-2, 0, 0)
		return base, time.Date(base.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
	}

	prevMonth := utils.MonthStart(now).AddDate(0, -1, 0)
	return prevMonth, clampToMonth(prevMonth, now.Day())
}

// clampToMonth pins a day number inside the month, so day 31 comparisons
// against short months land on the month's last day.
func clampToMonth(monthStart time.Time, day int) time.Time {
	if max := utils.DaysInMonth(monthStart); day > max {
		day = max
	}

	return time.Date(monthStart.Year(), monthStart.Month(), day, 0, 0, 0, 0, monthStart.Location())
}
