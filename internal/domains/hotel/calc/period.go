package calc

import (
	"fmt"
	"reziro/internal/domains/hotel/model"
	"reziro/shared/constant"
	"time"
)

const (
	monthKeyLength  = 7
	monthsInQuarter = 3
	daysInWeek      = 7
	lastWeekOfMonth = 4
)

// MonthKey returns the YYYY-MM bucket of an ISO date.
func MonthKey(date string) string {
	parsed, err := ParseDate(date)
	if err != nil {
		if len(date) >= monthKeyLength {
			return date[:monthKeyLength]
		}

		return constant.Empty
	}

	return parsed.Format(constant.MonthKeyFormat)
}

// WeekOfMonth buckets the day of month: 1-7, 8-14, 15-21 and 22 onwards.
func WeekOfMonth(date string) int {
	parsed, err := ParseDate(date)
	if err != nil {
		return 1
	}

	week := (parsed.Day()-1)/daysInWeek + 1

	return min(week, lastWeekOfMonth)
}

func ParseMonthKey(monthKey string) (time.Time, error) {
	return time.Parse(constant.MonthKeyFormat, monthKey)
}

func ValidMonthKey(monthKey string) bool {
	_, err := ParseMonthKey(monthKey)

	return err == nil
}

func PreviousMonthKey(monthKey string) string {
	parsed, err := ParseMonthKey(monthKey)
	if err != nil {
		return constant.Empty
	}

	return parsed.AddDate(0, -1, 0).Format(constant.MonthKeyFormat)
}

func CurrentMonthKey(now time.Time) string {
	return now.Format(constant.MonthKeyFormat)
}

// PeriodKey maps a month onto the bucket a recurring cost of the given
// frequency belongs to: "2026-03", "2026-Q1" or "2026".
func PeriodKey(frequency model.Frequency, monthKey string) string {
	parsed, err := ParseMonthKey(monthKey)
	if err != nil {
		return monthKey
	}

	switch frequency {
	case model.FrequencyYearly:
		return fmt.Sprintf("%d", parsed.Year())
	case model.FrequencyQuarterly:
		quarter := (int(parsed.Month())-1)/monthsInQuarter + 1

		return fmt.Sprintf("%d-Q%d", parsed.Year(), quarter)
	default:
		return parsed.Format(constant.MonthKeyFormat)
	}
}

// HotelCostActiveInMonth reports whether the cost's period bucket contains
// the month. Inactive costs never apply.
func HotelCostActiveInMonth(cost model.HotelCost, monthKey string) bool {
	if !cost.IsActive {
		return false
	}

	frequency := cost.FrequencyType
	if frequency == "" {
		frequency = model.FrequencyMonthly
	}

	return cost.PeriodKey == PeriodKey(frequency, monthKey)
}
