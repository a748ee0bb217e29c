package calc_test

import (
	"reziro/internal/domains/hotel/calc"
	"reziro/internal/domains/hotel/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", calc.MonthKey("2024-03-05"))
	assert.Equal(t, "2024-12", calc.MonthKey("2024-12-31"))
	assert.Equal(t, "2024-03", calc.MonthKey("2024-03-xx"))
	assert.Equal(t, "", calc.MonthKey("2024"))
}

func TestWeekOfMonth(t *testing.T) {
	tests := map[string]int{
		"2024-03-01": 1,
		"2024-03-07": 1,
		"2024-03-08": 2,
		"2024-03-14": 2,
		"2024-03-15": 3,
		"2024-03-21": 3,
		"2024-03-22": 4,
		"2024-03-31": 4,
		"garbage":    1,
	}

	for date, want := range tests {
		assert.Equal(t, want, calc.WeekOfMonth(date), date)
	}
}

func TestPeriodKey(t *testing.T) {
	tests := []struct {
		frequency model.Frequency
		monthKey  string
		want      string
	}{
		{frequency: model.FrequencyMonthly, monthKey: "2026-02", want: "2026-02"},
		{frequency: model.FrequencyQuarterly, monthKey: "2026-01", want: "2026-Q1"},
		{frequency: model.FrequencyQuarterly, monthKey: "2026-03", want: "2026-Q1"},
		{frequency: model.FrequencyQuarterly, monthKey: "2026-04", want: "2026-Q2"},
		{frequency: model.FrequencyQuarterly, monthKey: "2026-12", want: "2026-Q4"},
		{frequency: model.FrequencyYearly, monthKey: "2026-07", want: "2026"},
		{frequency: model.FrequencyYearly, monthKey: "bad", want: "bad"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, calc.PeriodKey(tt.frequency, tt.monthKey), "%s %s", tt.frequency, tt.monthKey)
	}
}

func TestHotelCostActiveInMonth(t *testing.T) {
	tests := []struct {
		name     string
		cost     model.HotelCost
		monthKey string
		want     bool
	}{
		{
			name:     "monthly same month",
			cost:     model.HotelCost{IsActive: true, FrequencyType: model.FrequencyMonthly, PeriodKey: "2026-02"},
			monthKey: "2026-02",
			want:     true,
		},
		{
			name:     "monthly other month",
			cost:     model.HotelCost{IsActive: true, FrequencyType: model.FrequencyMonthly, PeriodKey: "2026-02"},
			monthKey: "2026-03",
			want:     false,
		},
		{
			name:     "quarterly inside quarter",
			cost:     model.HotelCost{IsActive: true, FrequencyType: model.FrequencyQuarterly, PeriodKey: "2026-Q1"},
			monthKey: "2026-03",
			want:     true,
		},
		{
			name:     "quarterly next quarter",
			cost:     model.HotelCost{IsActive: true, FrequencyType: model.FrequencyQuarterly, PeriodKey: "2026-Q1"},
			monthKey: "2026-04",
			want:     false,
		},
		{
			name:     "yearly same year",
			cost:     model.HotelCost{IsActive: true, FrequencyType: model.FrequencyYearly, PeriodKey: "2026"},
			monthKey: "2026-11",
			want:     true,
		},
		{
			name:     "inactive never applies",
			cost:     model.HotelCost{IsActive: false, FrequencyType: model.FrequencyMonthly, PeriodKey: "2026-02"},
			monthKey: "2026-02",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.HotelCostActiveInMonth(tt.cost, tt.monthKey))
		})
	}
}

func TestPreviousMonthKey(t *testing.T) {
	assert.Equal(t, "2023-12", calc.PreviousMonthKey("2024-01"))
	assert.Equal(t, "2024-02", calc.PreviousMonthKey("2024-03"))
	assert.Equal(t, "", calc.PreviousMonthKey("2024"))
	assert.True(t, calc.ValidMonthKey("2024-09"))
	assert.False(t, calc.ValidMonthKey("2024-13"))
}
