// Package calc holds the pure booking arithmetic: nights, income, cost totals,
// profit metrics, VAT and partner commissions. Nothing here performs I/O or
// keeps state, and every function is total over its inputs: bad ranges are
// clamped, never reported as errors.
package calc

import (
	"reziro/internal/domains/hotel/model"
	"reziro/shared/constant"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	VATRate = 0.18

	moneyPlaces = 2
	hoursPerDay = 24
)

var vatRate = decimal.NewFromFloat(VATRate)

// BookingInput is the raw material of a booking. Everything else on
// model.Booking is derived from it.
type BookingInput struct {
	ID                 string
	RoomID             string
	StartDate          string
	EndDate            string
	PricePerNight      float64
	ExtraExpenses      float64
	SelectedRoomCosts  []model.SelectedCost
	SelectedHotelCosts []model.SelectedCost
	PartnerReferrals   []model.PartnerReferral
	VATEnabled         bool
	Customer           *model.Customer
	CreatedAt          time.Time
}

// InputFromBooking recovers the raw input of an existing booking so that a
// partial update can be merged onto it and normalized again.
func InputFromBooking(booking model.Booking) BookingInput {
	return BookingInput{
		ID:                 booking.ID,
		RoomID:             booking.RoomID,
		StartDate:          booking.StartDate,
		EndDate:            booking.EndDate,
		PricePerNight:      booking.PricePerNight,
		ExtraExpenses:      booking.ExtraExpenses,
		SelectedRoomCosts:  booking.SelectedRoomCosts,
		SelectedHotelCosts: booking.SelectedHotelCosts,
		PartnerReferrals:   booking.PartnerReferrals,
		VATEnabled:         booking.VATEnabled != nil && *booking.VATEnabled,
		Customer:           booking.Customer,
		CreatedAt:          booking.CreatedAt,
	}
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD) as a UTC midnight.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(constant.DateOnlyFormat, date)
}

// NightsCount is the calendar-day distance between start and end, never negative.
func NightsCount(start, end string) int {
	startDate, err := ParseDate(start)
	if err != nil {
		return 0
	}

	endDate, err := ParseDate(end)
	if err != nil {
		return 0
	}

	nights := int(endDate.Sub(startDate).Hours() / hoursPerDay)

	return max(0, nights)
}

func Income(nights int, pricePerNight float64) float64 {
	if nights <= 0 {
		return 0
	}

	return decimal.NewFromInt(int64(nights)).Mul(decimal.NewFromFloat(pricePerNight)).InexactFloat64()
}

// LineTotal is unit × qty for a single cost line.
func LineTotal(unitCost, qty float64) float64 {
	return decimal.NewFromFloat(unitCost).Mul(decimal.NewFromFloat(qty)).InexactFloat64()
}

func sumLines(lines []model.SelectedCost) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromFloat(line.Total))
	}

	return total
}

func CostTotals(roomCosts, hotelCosts []model.SelectedCost) model.BookingTotals {
	room := sumLines(roomCosts)
	hotel := sumLines(hotelCosts)

	return model.BookingTotals{
		TotalRoomCosts:     room.InexactFloat64(),
		TotalHotelCosts:    hotel.InexactFloat64(),
		TotalOrderExpenses: room.Add(hotel).InexactFloat64(),
	}
}

func Metrics(income float64, totals model.BookingTotals, extraExpenses float64, referrals []model.PartnerReferral) model.BookingMetrics {
	inc := decimal.NewFromFloat(income)
	room := decimal.NewFromFloat(totals.TotalRoomCosts)
	hotel := decimal.NewFromFloat(totals.TotalHotelCosts)
	extra := decimal.NewFromFloat(extraExpenses)

	commissions := decimal.Zero
	for _, referral := range referrals {
		commissions = commissions.Add(decimal.NewFromFloat(referral.CommissionEarned))
	}

	gross := inc.Sub(room)

	return model.BookingMetrics{
		PotentialProfit: inc.Sub(room.Add(hotel)).InexactFloat64(),
		GrossProfit:     gross.InexactFloat64(),
		NetProfit:       gross.Sub(hotel.Add(extra)).Add(commissions).InexactFloat64(),
	}
}

// Round2 rounds half away from zero to two decimal places.
func Round2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(moneyPlaces).InexactFloat64()
}

// VAT returns the VAT share of income and the VAT-inclusive total, both
// rounded to two decimals.
func VAT(income float64) (vatAmount, totalAmount float64) {
	inc := decimal.NewFromFloat(income)

	vatAmount = inc.Mul(vatRate).Round(moneyPlaces).InexactFloat64()
	totalAmount = inc.Mul(decimal.NewFromInt(1).Add(vatRate)).Round(moneyPlaces).InexactFloat64()

	return vatAmount, totalAmount
}

func normalizeLines(lines []model.SelectedCost) []model.SelectedCost {
	out := make([]model.SelectedCost, 0, len(lines))
	for _, line := range lines {
		line.Total = LineTotal(line.UnitCostSnapshot, line.Qty)
		out = append(out, line)
	}

	return out
}

// NormalizeAndComputeBooking is the only constructor of model.Booking. A
// missing id gets a fresh UUID, a zero CreatedAt becomes now, and UpdatedAt is
// always now.
func NormalizeAndComputeBooking(input BookingInput, now time.Time) model.Booking {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	roomCosts := normalizeLines(input.SelectedRoomCosts)
	hotelCosts := normalizeLines(input.SelectedHotelCosts)

	nights := NightsCount(input.StartDate, input.EndDate)
	income := Income(nights, input.PricePerNight)
	totals := CostTotals(roomCosts, hotelCosts)

	var referrals []model.PartnerReferral
	if input.PartnerReferrals != nil {
		referrals = append([]model.PartnerReferral{}, input.PartnerReferrals...)
	}

	booking := model.Booking{
		ID:                 id,
		RoomID:             input.RoomID,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		MonthKey:           MonthKey(input.StartDate),
		WeekOfMonth:        WeekOfMonth(input.StartDate),
		PricePerNight:      input.PricePerNight,
		NightsCount:        nights,
		Income:             income,
		ExtraExpenses:      input.ExtraExpenses,
		SelectedRoomCosts:  roomCosts,
		SelectedHotelCosts: hotelCosts,
		PartnerReferrals:   referrals,
		Totals:             totals,
		Metrics:            Metrics(income, totals, input.ExtraExpenses, referrals),
		Customer:           input.Customer,
		CreatedAt:          createdAt,
		UpdatedAt:          now,
	}

	totalAmount := income
	if input.VATEnabled {
		enabled := true
		vatAmount, withVAT := VAT(income)

		booking.VATEnabled = &enabled
		booking.VATAmount = &vatAmount
		totalAmount = withVAT
	}

	booking.TotalAmount = &totalAmount

	return booking
}

// SelectedCostFromCatalog snapshots a catalog item. A nil qty falls back to
// the item's default quantity.
func SelectedCostFromCatalog(item model.CostCatalogItem, qty *float64) model.SelectedCost {
	quantity := item.DefaultQty
	if qty != nil {
		quantity = *qty
	}

	return model.SelectedCost{
		CatalogID:        item.ID,
		LabelSnapshot:    item.Label,
		UnitCostSnapshot: item.UnitCost,
		Qty:              quantity,
		Total:            LineTotal(item.UnitCost, quantity),
	}
}

// Commission is what the hotel earns from a partner for a referral: a fixed
// amount per guest, or a percentage of orderAmount per guest.
func Commission(partner model.Partner, guests int, orderAmount float64) float64 {
	value := decimal.NewFromFloat(partner.CommissionValue)
	guestCount := decimal.NewFromInt(int64(guests))

	if partner.CommissionType == model.CommissionFixed {
		return value.Mul(guestCount).InexactFloat64()
	}

	return decimal.NewFromFloat(orderAmount).
		Mul(guestCount).
		Mul(value).
		Div(decimal.NewFromInt(100)).
		InexactFloat64()
}

// BookingReferralCommission prices a referral attached to a booking, where a
// percentage commission applies to the booking's income.
func BookingReferralCommission(partner model.Partner, guests int, bookingIncome float64) float64 {
	if partner.CommissionType == model.CommissionFixed {
		return Commission(partner, guests, 0)
	}

	return decimal.NewFromFloat(bookingIncome).
		Mul(decimal.NewFromFloat(partner.CommissionValue)).
		Div(decimal.NewFromInt(100)).
		InexactFloat64()
}
