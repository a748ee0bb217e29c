package calc_test

import (
	"reziro/internal/domains/hotel/calc"
	"reziro/internal/domains/hotel/model"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func TestNightsCount(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "same day", start: "2024-01-01", end: "2024-01-01", want: 0},
		{name: "two nights", start: "2024-01-01", end: "2024-01-03", want: 2},
		{name: "across month", start: "2024-01-30", end: "2024-02-02", want: 3},
		{name: "across leap day", start: "2024-02-28", end: "2024-03-01", want: 2},
		{name: "inverted range clamps to zero", start: "2024-01-10", end: "2024-01-05", want: 0},
		{name: "unparsable start", start: "not-a-date", end: "2024-01-05", want: 0},
		{name: "unparsable end", start: "2024-01-05", end: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.NightsCount(tt.start, tt.end))
		})
	}
}

func TestIncome(t *testing.T) {
	tests := []struct {
		name   string
		nights int
		price  float64
		want   float64
	}{
		{name: "three nights", nights: 3, price: 120, want: 360},
		{name: "zero nights", nights: 0, price: 500, want: 0},
		{name: "negative nights never produce negative income", nights: -2, price: 100, want: 0},
		{name: "fractional price", nights: 3, price: 99.9, want: 299.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Income(tt.nights, tt.price))
		})
	}
}

func TestCostTotals(t *testing.T) {
	room := []model.SelectedCost{
		{CatalogID: "a", UnitCostSnapshot: 2.99, Qty: 2, Total: 5.98},
		{CatalogID: "b", UnitCostSnapshot: 0.1, Qty: 3, Total: 0.3},
	}
	hotel := []model.SelectedCost{
		{CatalogID: "c", UnitCostSnapshot: 40, Qty: 1, Total: 40},
	}

	totals := calc.CostTotals(room, hotel)

	assert.Equal(t, 6.28, totals.TotalRoomCosts)
	assert.Equal(t, 40.0, totals.TotalHotelCosts)
	assert.Equal(t, 46.28, totals.TotalOrderExpenses)

	empty := calc.CostTotals(nil, nil)
	assert.Equal(t, model.BookingTotals{}, empty)
}

func TestVAT(t *testing.T) {
	tests := []struct {
		income    float64
		wantVAT   float64
		wantTotal float64
	}{
		{income: 100, wantVAT: 18, wantTotal: 118},
		{income: 360, wantVAT: 64.8, wantTotal: 424.8},
		{income: 0, wantVAT: 0, wantTotal: 0},
		{income: 0.25, wantVAT: 0.05, wantTotal: 0.3},
		{income: 123.45, wantVAT: 22.22, wantTotal: 145.67},
	}

	for _, tt := range tests {
		vat, total := calc.VAT(tt.income)

		assert.Equal(t, tt.wantVAT, vat, "vat for %v", tt.income)
		assert.Equal(t, tt.wantTotal, total, "total for %v", tt.income)
		assert.InDelta(t, vat, total-tt.income, 0.01)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, calc.Round2(1.005))
	assert.Equal(t, 2.68, calc.Round2(2.675))
	assert.Equal(t, -1.01, calc.Round2(-1.005))
	assert.Equal(t, 10.0, calc.Round2(10))
}

func TestNormalizeAndComputeBooking(t *testing.T) {
	t.Run("derives every field", func(t *testing.T) {
		input := calc.BookingInput{
			RoomID:        "room-1",
			StartDate:     "2024-03-15",
			EndDate:       "2024-03-18",
			PricePerNight: 120,
			ExtraExpenses: 15,
			SelectedRoomCosts: []model.SelectedCost{
				{CatalogID: "rc-001", LabelSnapshot: "Slippers", UnitCostSnapshot: 2.99, Qty: 2},
			},
			SelectedHotelCosts: []model.SelectedCost{
				{CatalogID: "hc-1", LabelSnapshot: "Laundry", UnitCostSnapshot: 20, Qty: 1},
			},
			PartnerReferrals: []model.PartnerReferral{
				{PartnerID: "p-1", PartnerName: "Spa", GuestsCount: 2, CommissionEarned: 30, Date: "2024-03-16"},
			},
		}

		booking := calc.NormalizeAndComputeBooking(input, now)

		_, err := uuid.Parse(booking.ID)
		require.NoError(t, err)

		assert.Equal(t, "2024-03", booking.MonthKey)
		assert.Equal(t, 3, booking.WeekOfMonth)
		assert.Equal(t, 3, booking.NightsCount)
		assert.Equal(t, 360.0, booking.Income)
		assert.Equal(t, 5.98, booking.SelectedRoomCosts[0].Total)
		assert.Equal(t, 5.98, booking.Totals.TotalRoomCosts)
		assert.Equal(t, 20.0, booking.Totals.TotalHotelCosts)
		assert.Equal(t, 25.98, booking.Totals.TotalOrderExpenses)
		assert.Equal(t, 334.02, booking.Metrics.PotentialProfit)
		assert.Equal(t, 354.02, booking.Metrics.GrossProfit)
		assert.Equal(t, 349.02, booking.Metrics.NetProfit)
		assert.Nil(t, booking.VATEnabled)
		assert.Nil(t, booking.VATAmount)
		require.NotNil(t, booking.TotalAmount)
		assert.Equal(t, 360.0, *booking.TotalAmount)
		assert.Equal(t, now, booking.CreatedAt)
		assert.Equal(t, now, booking.UpdatedAt)
	})

	t.Run("keeps id and createdAt on recompute", func(t *testing.T) {
		createdAt := now.Add(-48 * time.Hour)
		input := calc.BookingInput{
			ID:            "11111111-1111-1111-1111-111111111111",
			RoomID:        "room-1",
			StartDate:     "2024-03-01",
			EndDate:       "2024-03-02",
			PricePerNight: 100,
			CreatedAt:     createdAt,
		}

		booking := calc.NormalizeAndComputeBooking(input, now)

		assert.Equal(t, input.ID, booking.ID)
		assert.Equal(t, createdAt, booking.CreatedAt)
		assert.Equal(t, now, booking.UpdatedAt)
	})

	t.Run("vat enabled", func(t *testing.T) {
		booking := calc.NormalizeAndComputeBooking(calc.BookingInput{
			RoomID:        "room-1",
			StartDate:     "2024-03-01",
			EndDate:       "2024-03-04",
			PricePerNight: 120,
			VATEnabled:    true,
		}, now)

		require.NotNil(t, booking.VATEnabled)
		assert.True(t, *booking.VATEnabled)
		assert.Equal(t, 64.8, *booking.VATAmount)
		assert.Equal(t, 424.8, *booking.TotalAmount)
	})

	t.Run("inverted dates give zero nights and income", func(t *testing.T) {
		booking := calc.NormalizeAndComputeBooking(calc.BookingInput{
			RoomID:        "room-1",
			StartDate:     "2024-03-05",
			EndDate:       "2024-03-01",
			PricePerNight: 120,
		}, now)

		assert.Equal(t, 0, booking.NightsCount)
		assert.Equal(t, 0.0, booking.Income)
	})

	t.Run("input slices are not shared", func(t *testing.T) {
		lines := []model.SelectedCost{{CatalogID: "a", UnitCostSnapshot: 1, Qty: 1}}
		booking := calc.NormalizeAndComputeBooking(calc.BookingInput{
			RoomID:            "room-1",
			StartDate:         "2024-03-01",
			EndDate:           "2024-03-02",
			SelectedRoomCosts: lines,
		}, now)

		booking.SelectedRoomCosts[0].Qty = 99

		assert.Equal(t, 1.0, lines[0].Qty)
	})
}

func TestNormalizeAndComputeBooking_ProfitIdentity(t *testing.T) {
	inputs := []calc.BookingInput{
		{StartDate: "2024-01-01", EndDate: "2024-01-01", PricePerNight: 100},
		{StartDate: "2024-01-01", EndDate: "2024-01-08", PricePerNight: 333.33, ExtraExpenses: 12.5},
		{
			StartDate:          "2024-05-20",
			EndDate:            "2024-05-23",
			PricePerNight:      0.1,
			ExtraExpenses:      -3,
			SelectedRoomCosts:  []model.SelectedCost{{UnitCostSnapshot: 0.649, Qty: 3}},
			SelectedHotelCosts: []model.SelectedCost{{UnitCostSnapshot: 1.416, Qty: 7}},
			PartnerReferrals:   []model.PartnerReferral{{CommissionEarned: 0.3}, {CommissionEarned: 17.77}},
		},
		{
			StartDate:          "2024-12-31",
			EndDate:            "2025-01-02",
			PricePerNight:      899.99,
			SelectedHotelCosts: []model.SelectedCost{{UnitCostSnapshot: 52, Qty: 1}},
			VATEnabled:         true,
		},
	}

	for _, input := range inputs {
		booking := calc.NormalizeAndComputeBooking(input, now)

		commissions := 0.0
		for _, referral := range booking.PartnerReferrals {
			commissions += referral.CommissionEarned
		}

		want := booking.Income - booking.Totals.TotalRoomCosts - booking.Totals.TotalHotelCosts - booking.ExtraExpenses + commissions
		assert.InDelta(t, want, booking.Metrics.NetProfit, 1e-9)
		assert.InDelta(t, booking.Income-booking.Totals.TotalRoomCosts, booking.Metrics.GrossProfit, 1e-9)
		assert.InDelta(t, booking.Income-booking.Totals.TotalOrderExpenses, booking.Metrics.PotentialProfit, 1e-9)
	}
}

func TestInputFromBooking(t *testing.T) {
	original := calc.NormalizeAndComputeBooking(calc.BookingInput{
		RoomID:        "room-1",
		StartDate:     "2024-03-01",
		EndDate:       "2024-03-04",
		PricePerNight: 120,
		VATEnabled:    true,
	}, now)

	input := calc.InputFromBooking(original)
	input.PricePerNight = 200

	later := now.Add(time.Hour)
	updated := calc.NormalizeAndComputeBooking(input, later)

	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, 600.0, updated.Income)
	assert.Equal(t, 708.0, *updated.TotalAmount)
}

func TestSelectedCostFromCatalog(t *testing.T) {
	item := model.CostCatalogItem{ID: "rc-001", Type: model.CostTypeRoom, Label: "Slippers", UnitCost: 2.99, DefaultQty: 2, IsActive: true}

	line := calc.SelectedCostFromCatalog(item, nil)
	assert.Equal(t, model.SelectedCost{CatalogID: "rc-001", LabelSnapshot: "Slippers", UnitCostSnapshot: 2.99, Qty: 2, Total: 5.98}, line)

	qty := 5.0
	line = calc.SelectedCostFromCatalog(item, &qty)
	assert.Equal(t, 5.0, line.Qty)
	assert.Equal(t, 14.95, line.Total)
}

func TestCommission(t *testing.T) {
	tests := []struct {
		name        string
		partner     model.Partner
		guests      int
		orderAmount float64
		want        float64
	}{
		{
			name:    "fixed per guest",
			partner: model.Partner{CommissionType: model.CommissionFixed, CommissionValue: 50},
			guests:  3,
			want:    150,
		},
		{
			name:        "percentage of order per guest",
			partner:     model.Partner{CommissionType: model.CommissionPercentage, CommissionValue: 15},
			guests:      2,
			orderAmount: 200,
			want:        60,
		},
		{
			name:        "percentage without order amount",
			partner:     model.Partner{CommissionType: model.CommissionPercentage, CommissionValue: 15},
			guests:      4,
			orderAmount: 0,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Commission(tt.partner, tt.guests, tt.orderAmount))
		})
	}
}

func TestBookingReferralCommission(t *testing.T) {
	fixed := model.Partner{CommissionType: model.CommissionFixed, CommissionValue: 25}
	percentage := model.Partner{CommissionType: model.CommissionPercentage, CommissionValue: 10}

	assert.Equal(t, 75.0, calc.BookingReferralCommission(fixed, 3, 1000))
	assert.Equal(t, 100.0, calc.BookingReferralCommission(percentage, 3, 1000))
}

func TestDefaultRoomCosts(t *testing.T) {
	items := calc.DefaultRoomCosts()

	require.Len(t, items, 12)
	assert.Equal(t, "rc-001", items[0].ID)
	assert.Equal(t, 52.0, items[8].UnitCost)

	for _, item := range items {
		assert.Equal(t, model.CostTypeRoom, item.Type)
		assert.True(t, item.IsActive)
	}
}
