package model

import (
	"time"
)

type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Number    *string   `json:"number,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SelectedCost is a snapshot of a catalog line taken when it was attached to a
// booking or expense. Later catalog edits never reach it.
type SelectedCost struct {
	CatalogID        string  `json:"catalogId"`
	LabelSnapshot    string  `json:"labelSnapshot"`
	UnitCostSnapshot float64 `json:"unitCostSnapshot"`
	Qty              float64 `json:"qty"`
	Total            float64 `json:"total"`
}

type PartnerReferral struct {
	PartnerID        string  `json:"partnerId"`
	PartnerName      string  `json:"partnerName"`
	GuestsCount      int     `json:"guestsCount"`
	CommissionEarned float64 `json:"commissionEarned"`
	Date             string  `json:"date"`
}

type BookingTotals struct {
	TotalRoomCosts     float64 `json:"totalRoomCosts"`
	TotalHotelCosts    float64 `json:"totalHotelCosts"`
	TotalOrderExpenses float64 `json:"totalOrderExpenses"`
}

type BookingMetrics struct {
	PotentialProfit float64 `json:"potentialProfit"`
	GrossProfit     float64 `json:"grossProfit"`
	NetProfit       float64 `json:"netProfit"`
}

type Customer struct {
	Name  *string `json:"customerName,omitempty"`
	Phone *string `json:"customerPhone,omitempty"`
	Email *string `json:"customerEmail,omitempty"`
}

// Booking is always produced by calc.NormalizeAndComputeBooking; every derived
// field (month key, week, nights, income, totals, metrics, VAT) is recomputed
// from the raw inputs on each write.
type Booking struct {
	ID                 string            `json:"id"`
	RoomID             string            `json:"roomId"`
	StartDate          string            `json:"startDate"`
	EndDate            string            `json:"endDate"`
	MonthKey           string            `json:"monthKey"`
	WeekOfMonth        int               `json:"weekOfMonth"`
	PricePerNight      float64           `json:"pricePerNight"`
	NightsCount        int               `json:"nightsCount"`
	Income             float64           `json:"income"`
	ExtraExpenses      float64           `json:"extraExpenses"`
	SelectedRoomCosts  []SelectedCost    `json:"selectedRoomCosts"`
	SelectedHotelCosts []SelectedCost    `json:"selectedHotelCosts"`
	PartnerReferrals   []PartnerReferral `json:"partnerReferrals,omitempty"`
	VATEnabled         *bool             `json:"vatEnabled,omitempty"`
	VATAmount          *float64          `json:"vatAmount,omitempty"`
	TotalAmount        *float64          `json:"totalAmount,omitempty"`
	Totals             BookingTotals     `json:"totals"`
	Metrics            BookingMetrics    `json:"metrics"`
	Customer           *Customer         `json:"customer,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

func (b Booking) PartnerRevenue() float64 {
	total := 0.0
	for _, referral := range b.PartnerReferrals {
		total += referral.CommissionEarned
	}

	return total
}

// CostCatalogItem is a cost template. RoomID is set when the item was added
// for one specific room; nil means it applies to every room.
type CostCatalogItem struct {
	ID         string           `json:"id"`
	Type       CostType         `json:"type"`
	Category   *CatalogCategory `json:"category,omitempty"`
	Label      string           `json:"label"`
	UnitCost   float64          `json:"unitCost"`
	DefaultQty float64          `json:"defaultQty"`
	IsActive   bool             `json:"isActive"`
	RoomID     *string          `json:"roomId,omitempty"`
}

type HotelCost struct {
	ID            string            `json:"id"`
	Label         string            `json:"label"`
	Amount        float64           `json:"amount"`
	Category      HotelCostCategory `json:"category"`
	IsActive      bool              `json:"isActive"`
	FrequencyType Frequency         `json:"frequencyType"`
	PeriodKey     string            `json:"periodKey"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     *time.Time        `json:"updatedAt,omitempty"`
}

type Partner struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Type              PartnerType    `json:"type"`
	Phone             string         `json:"phone"`
	Email             string         `json:"email"`
	CommissionType    CommissionType `json:"commissionType"`
	CommissionValue   float64        `json:"commissionValue"`
	DiscountForGuests *float64       `json:"discountForGuests,omitempty"`
	Location          *string        `json:"location,omitempty"`
	Notes             *string        `json:"notes,omitempty"`
	IsActive          bool           `json:"isActive"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         *time.Time     `json:"updatedAt,omitempty"`
}

// ManualReferral is partner revenue that is not attached to a booking.
type ManualReferral struct {
	ID               string    `json:"id"`
	PartnerID        string    `json:"partnerId"`
	GuestsCount      int       `json:"guestsCount"`
	Date             string    `json:"date"`
	Notes            *string   `json:"notes,omitempty"`
	CommissionEarned float64   `json:"commissionEarned"`
	MonthKey         string    `json:"monthKey"`
	CreatedAt        time.Time `json:"createdAt"`
}

type MonthLock struct {
	MonthKey string     `json:"monthKey"`
	IsLocked bool       `json:"isLocked"`
	LockedAt *time.Time `json:"lockedAt,omitempty"`
}

type Forecast struct {
	ID             string       `json:"id"`
	MonthKey       string       `json:"monthKey"`
	Category       string       `json:"category"`
	ExpectedAmount float64      `json:"expectedAmount"`
	Confidence     float64      `json:"confidence"`
	Period         Frequency    `json:"period"`
	Type           ForecastType `json:"type"`
	CreatedAt      time.Time    `json:"createdAt"`
}

type Expense struct {
	ID                 string         `json:"id"`
	Type               ExpenseType    `json:"type"`
	Description        string         `json:"description"`
	Amount             float64        `json:"amount"`
	Date               string         `json:"date"`
	MonthKey           string         `json:"monthKey"`
	RoomID             *string        `json:"roomId,omitempty"`
	BookingID          *string        `json:"bookingId,omitempty"`
	SelectedRoomCosts  []SelectedCost `json:"selectedRoomCosts,omitempty"`
	SelectedHotelCosts []SelectedCost `json:"selectedHotelCosts,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

type PartnerStats struct {
	PartnerID      string  `json:"partnerId"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalReferrals int     `json:"totalReferrals"`
	TotalGuests    int     `json:"totalGuests"`
}
