package calc

import (
	"reziro/internal/domains/hotel/model"

	"github.com/shopspring/decimal"
)

const percent = 100

type monthTotals struct {
	bookings   int
	nights     int
	income     decimal.Decimal
	room       decimal.Decimal
	hotel      decimal.Decimal
	extra      decimal.Decimal
	expenses   decimal.Decimal
	recurring  decimal.Decimal
	commission decimal.Decimal
}

func (m monthTotals) totalExpenses() decimal.Decimal {
	return m.room.Add(m.hotel).Add(m.extra).Add(m.expenses).Add(m.recurring)
}

func (m monthTotals) netProfit() decimal.Decimal {
	return m.income.Sub(m.totalExpenses())
}

func aggregateMonth(state model.AppState, monthKey string) monthTotals {
	totals := monthTotals{}

	for _, booking := range state.Bookings {
		if booking.MonthKey != monthKey {
			continue
		}

		totals.bookings++
		totals.nights += booking.NightsCount
		totals.income = totals.income.Add(decimal.NewFromFloat(booking.Income))
		totals.room = totals.room.Add(decimal.NewFromFloat(booking.Totals.TotalRoomCosts))
		totals.hotel = totals.hotel.Add(decimal.NewFromFloat(booking.Totals.TotalHotelCosts))
		totals.extra = totals.extra.Add(decimal.NewFromFloat(booking.ExtraExpenses))
		totals.commission = totals.commission.Add(decimal.NewFromFloat(booking.PartnerRevenue()))
	}

	for _, expense := range state.Expenses {
		if expense.MonthKey == monthKey {
			totals.expenses = totals.expenses.Add(decimal.NewFromFloat(expense.Amount))
		}
	}

	for _, cost := range state.HotelCosts {
		if HotelCostActiveInMonth(cost, monthKey) {
			totals.recurring = totals.recurring.Add(decimal.NewFromFloat(cost.Amount))
		}
	}

	for _, referral := range state.ManualReferrals {
		if referral.MonthKey == monthKey {
			totals.commission = totals.commission.Add(decimal.NewFromFloat(referral.CommissionEarned))
		}
	}

	return totals
}

func change(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}

	return current.Sub(previous).Div(previous.Abs()).Mul(decimal.NewFromInt(percent)).Round(1).InexactFloat64()
}

// MonthSummary aggregates one month for the financial dashboard and compares
// it with the month before. Net profit is income minus every cost bucket;
// partner revenue is reported alongside, not folded in.
func MonthSummary(state model.AppState, monthKey string) model.MonthSummary {
	current := aggregateMonth(state, monthKey)
	previousKey := PreviousMonthKey(monthKey)
	previous := aggregateMonth(state, previousKey)

	net := current.netProfit()
	previousNet := previous.netProfit()

	margin := 0.0
	if current.income.IsPositive() {
		margin = net.Div(current.income).Mul(decimal.NewFromInt(percent)).Round(1).InexactFloat64()
	}

	return model.MonthSummary{
		MonthKey:            monthKey,
		BookingCount:        current.bookings,
		TotalNights:         current.nights,
		TotalIncome:         current.income.InexactFloat64(),
		TotalRoomCosts:      current.room.InexactFloat64(),
		TotalHotelCosts:     current.hotel.InexactFloat64(),
		TotalExtraExpenses:  current.extra.InexactFloat64(),
		StandaloneExpenses:  current.expenses.InexactFloat64(),
		RecurringHotelCosts: current.recurring.InexactFloat64(),
		PartnerRevenue:      current.commission.InexactFloat64(),
		TotalExpenses:       current.totalExpenses().InexactFloat64(),
		NetProfit:           net.InexactFloat64(),
		ProfitMargin:        margin,
		IsLocked:            state.IsMonthLocked(monthKey),
		PreviousMonthKey:    previousKey,
		PreviousIncome:      previous.income.InexactFloat64(),
		PreviousNetProfit:   previousNet.InexactFloat64(),
		IncomeChange:        change(current.income, previous.income),
		NetProfitChange:     change(net, previousNet),
	}
}

// PartnerStats totals what a partner brought in through booking referrals and
// manual referrals. An empty monthKey means all time.
func PartnerStats(state model.AppState, partnerID, monthKey string) model.PartnerStats {
	revenue := decimal.Zero
	stats := model.PartnerStats{PartnerID: partnerID}

	for _, booking := range state.Bookings {
		if monthKey != "" && booking.MonthKey != monthKey {
			continue
		}

		for _, referral := range booking.PartnerReferrals {
			if referral.PartnerID != partnerID {
				continue
			}

			revenue = revenue.Add(decimal.NewFromFloat(referral.CommissionEarned))
			stats.TotalReferrals++
			stats.TotalGuests += referral.GuestsCount
		}
	}

	for _, referral := range state.ManualReferrals {
		if referral.PartnerID != partnerID || (monthKey != "" && referral.MonthKey != monthKey) {
			continue
		}

		revenue = revenue.Add(decimal.NewFromFloat(referral.CommissionEarned))
		stats.TotalReferrals++
		stats.TotalGuests += referral.GuestsCount
	}

	stats.TotalRevenue = revenue.InexactFloat64()

	return stats
}

func AllPartnerStats(state model.AppState, monthKey string) []model.PartnerStats {
	stats := make([]model.PartnerStats, 0, len(state.Partners))
	for _, partner := range state.Partners {
		stats = append(stats, PartnerStats(state, partner.ID, monthKey))
	}

	return stats
}
