package dto

import (
	"reziro/internal/domains/hotel/model"
	"strings"
)

type CreateRoomRequest struct {
	Name   string  `json:"name"             validate:"required,max=100"`
	Number *string `json:"number,omitempty" validate:"omitempty,max=20"`
}

type UpdateRoomRequest struct {
	Name   *string `json:"name,omitempty"   validate:"omitempty,min=1,max=100"`
	Number *string `json:"number,omitempty" validate:"omitempty,max=20"`
}

// SelectedCostRequest picks a catalog item for a booking or expense. The
// label and unit cost are snapshotted from the catalog at selection time.
type SelectedCostRequest struct {
	CatalogID string   `json:"catalogId"     validate:"required"`
	Qty       *float64 `json:"qty,omitempty" validate:"omitempty,gte=0"`
}

type PartnerReferralRequest struct {
	PartnerID   string `json:"partnerId"   validate:"required"`
	GuestsCount int    `json:"guestsCount" validate:"gte=1"`
	Date        string `json:"date"        validate:"required,isodate"`
}

type CustomerRequest struct {
	Name  *string `json:"customerName,omitempty"  validate:"omitempty,max=100"`
	Phone *string `json:"customerPhone,omitempty" validate:"omitempty,max=30"`
	Email *string `json:"customerEmail,omitempty" validate:"omitempty,email,max=100"`
}

// ToModel trims every field and drops the empty ones. A customer with nothing
// left is absent.
func (c *CustomerRequest) ToModel() *model.Customer {
	if c == nil {
		return nil
	}

	customer := model.Customer{
		Name:  OptionalString(c.Name),
		Phone: OptionalString(c.Phone),
		Email: OptionalString(c.Email),
	}

	if customer.Name == nil && customer.Phone == nil && customer.Email == nil {
		return nil
	}

	return &customer
}

type CreateBookingRequest struct {
	RoomID             string                   `json:"roomId"                     validate:"required"`
	StartDate          string                   `json:"startDate"                  validate:"required,isodate"`
	EndDate            string                   `json:"endDate"                    validate:"required,isodate"`
	PricePerNight      float64                  `json:"pricePerNight"              validate:"gte=0"`
	ExtraExpenses      float64                  `json:"extraExpenses"`
	SelectedRoomCosts  []SelectedCostRequest    `json:"selectedRoomCosts"          validate:"dive"`
	SelectedHotelCosts []SelectedCostRequest    `json:"selectedHotelCosts"         validate:"dive"`
	PartnerReferrals   []PartnerReferralRequest `json:"partnerReferrals,omitempty" validate:"dive"`
	VATEnabled         bool                     `json:"vatEnabled"`
	Customer           *CustomerRequest         `json:"customer,omitempty"`
}

// UpdateBookingRequest is a partial booking. Absent fields keep the stored
// value; a present slice replaces the stored one entirely.
type UpdateBookingRequest struct {
	RoomID             *string                   `json:"roomId,omitempty"             validate:"omitempty,min=1"`
	StartDate          *string                   `json:"startDate,omitempty"          validate:"omitempty,isodate"`
	EndDate            *string                   `json:"endDate,omitempty"            validate:"omitempty,isodate"`
	PricePerNight      *float64                  `json:"pricePerNight,omitempty"      validate:"omitempty,gte=0"`
	ExtraExpenses      *float64                  `json:"extraExpenses,omitempty"`
	SelectedRoomCosts  *[]SelectedCostRequest    `json:"selectedRoomCosts,omitempty"  validate:"omitempty,dive"`
	SelectedHotelCosts *[]SelectedCostRequest    `json:"selectedHotelCosts,omitempty" validate:"omitempty,dive"`
	PartnerReferrals   *[]PartnerReferralRequest `json:"partnerReferrals,omitempty"   validate:"omitempty,dive"`
	VATEnabled         *bool                     `json:"vatEnabled,omitempty"`
	Customer           *CustomerRequest          `json:"customer,omitempty"`
}

// ConflictRequest checks a date range without writing anything.
type ConflictRequest struct {
	RoomID    string `json:"roomId"              validate:"required"`
	StartDate string `json:"startDate"           validate:"required,isodate"`
	EndDate   string `json:"endDate"             validate:"required,isodate"`
	ExcludeID string `json:"excludeId,omitempty"`
}

type ConflictResponse struct {
	Conflict  bool            `json:"conflict"`
	Conflicts []model.Booking `json:"conflicts"`
}

type CreateForecastRequest struct {
	MonthKey       string              `json:"monthKey"         validate:"required,monthkey"`
	Category       string              `json:"category"         validate:"required,max=100"`
	ExpectedAmount float64             `json:"expectedAmount"`
	Confidence     float64             `json:"confidence"       validate:"gte=0,lte=1"`
	Period         *model.Frequency    `json:"period,omitempty" validate:"omitempty,oneof=monthly quarterly yearly"`
	Type           *model.ForecastType `json:"type,omitempty"   validate:"omitempty,oneof=income expense"`
}

type UpdateForecastRequest struct {
	MonthKey       *string             `json:"monthKey,omitempty"       validate:"omitempty,monthkey"`
	Category       *string             `json:"category,omitempty"       validate:"omitempty,max=100"`
	ExpectedAmount *float64            `json:"expectedAmount,omitempty"`
	Confidence     *float64            `json:"confidence,omitempty"     validate:"omitempty,gte=0,lte=1"`
	Period         *model.Frequency    `json:"period,omitempty"         validate:"omitempty,oneof=monthly quarterly yearly"`
	Type           *model.ForecastType `json:"type,omitempty"           validate:"omitempty,oneof=income expense"`
}

type CreateExpenseRequest struct {
	Type               model.ExpenseType     `json:"type"                         validate:"required,oneof=booking room hotel custom"`
	Description        string                `json:"description"                  validate:"required,max=200"`
	Amount             float64               `json:"amount"                       validate:"gte=0"`
	Date               string                `json:"date"                         validate:"required,isodate"`
	RoomID             *string               `json:"roomId,omitempty"`
	BookingID          *string               `json:"bookingId,omitempty"`
	SelectedRoomCosts  []SelectedCostRequest `json:"selectedRoomCosts,omitempty"  validate:"dive"`
	SelectedHotelCosts []SelectedCostRequest `json:"selectedHotelCosts,omitempty" validate:"dive"`
}

type UpdateExpenseRequest struct {
	Type        *model.ExpenseType `json:"type,omitempty"        validate:"omitempty,oneof=booking room hotel custom"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=200"`
	Amount      *float64           `json:"amount,omitempty"      validate:"omitempty,gte=0"`
	Date        *string            `json:"date,omitempty"        validate:"omitempty,isodate"`
}

type CreateHotelCostRequest struct {
	Label         string                  `json:"label"                   validate:"required,max=100"`
	Amount        float64                 `json:"amount"                  validate:"gte=0"`
	Category      model.HotelCostCategory `json:"category"                validate:"required,oneof=employees arnona electricity water maintenance cleaning room_rent other"`
	FrequencyType *model.Frequency        `json:"frequencyType,omitempty" validate:"omitempty,oneof=monthly quarterly yearly"`
}

type UpdateHotelCostRequest struct {
	Label         *string                  `json:"label,omitempty"         validate:"omitempty,min=1,max=100"`
	Amount        *float64                 `json:"amount,omitempty"        validate:"omitempty,gte=0"`
	Category      *model.HotelCostCategory `json:"category,omitempty"      validate:"omitempty,oneof=employees arnona electricity water maintenance cleaning room_rent other"`
	FrequencyType *model.Frequency         `json:"frequencyType,omitempty" validate:"omitempty,oneof=monthly quarterly yearly"`
}

type CreateCostCatalogItemRequest struct {
	Type       model.CostType         `json:"type"               validate:"required,oneof=room hotel"`
	Category   *model.CatalogCategory `json:"category,omitempty" validate:"omitempty,oneof=base treat extra"`
	Label      string                 `json:"label"              validate:"required,max=100"`
	UnitCost   float64                `json:"unitCost"           validate:"gte=0"`
	DefaultQty float64                `json:"defaultQty"         validate:"gte=0"`
	IsActive   *bool                  `json:"isActive,omitempty"`
}

type UpdateCostCatalogItemRequest struct {
	Label      *string  `json:"label,omitempty"      validate:"omitempty,min=1,max=100"`
	UnitCost   *float64 `json:"unitCost,omitempty"   validate:"omitempty,gte=0"`
	DefaultQty *float64 `json:"defaultQty,omitempty" validate:"omitempty,gte=0"`
	IsActive   *bool    `json:"isActive,omitempty"`
}

type CreatePartnerRequest struct {
	Name              string               `json:"name"                        validate:"required,max=100"`
	Type              model.PartnerType    `json:"type"                        validate:"required,oneof=restaurant spa shop tour attraction other"`
	Phone             string               `json:"phone"                       validate:"max=30"`
	Email             string               `json:"email"                       validate:"omitempty,email,max=100"`
	CommissionType    model.CommissionType `json:"commissionType"              validate:"required,oneof=percentage fixed"`
	CommissionValue   float64              `json:"commissionValue"             validate:"gte=0"`
	DiscountForGuests *float64             `json:"discountForGuests,omitempty" validate:"omitempty,gte=0"`
	Location          *string              `json:"location,omitempty"          validate:"omitempty,max=200"`
	Notes             *string              `json:"notes,omitempty"             validate:"omitempty,max=1000"`
	IsActive          *bool                `json:"isActive,omitempty"`
}

type UpdatePartnerRequest struct {
	Name              *string               `json:"name,omitempty"              validate:"omitempty,min=1,max=100"`
	Type              *model.PartnerType    `json:"type,omitempty"              validate:"omitempty,oneof=restaurant spa shop tour attraction other"`
	Phone             *string               `json:"phone,omitempty"             validate:"omitempty,max=30"`
	Email             *string               `json:"email,omitempty"             validate:"omitempty,max=100"`
	CommissionType    *model.CommissionType `json:"commissionType,omitempty"    validate:"omitempty,oneof=percentage fixed"`
	CommissionValue   *float64              `json:"commissionValue,omitempty"   validate:"omitempty,gte=0"`
	DiscountForGuests *float64              `json:"discountForGuests,omitempty" validate:"omitempty,gte=0"`
	Location          *string               `json:"location,omitempty"          validate:"omitempty,max=200"`
	Notes             *string               `json:"notes,omitempty"             validate:"omitempty,max=1000"`
}

// CreateManualReferralRequest records partner revenue outside a booking.
// OrderAmount only matters for percentage partners.
type CreateManualReferralRequest struct {
	PartnerID   string  `json:"partnerId"             validate:"required"`
	GuestsCount int     `json:"guestsCount"           validate:"gte=1"`
	Date        string  `json:"date"                  validate:"required,isodate"`
	OrderAmount float64 `json:"orderAmount,omitempty" validate:"gte=0"`
	Notes       *string `json:"notes,omitempty"       validate:"omitempty,max=1000"`
}

type UpdateManualReferralRequest struct {
	GuestsCount *int     `json:"guestsCount,omitempty" validate:"omitempty,gte=1"`
	Date        *string  `json:"date,omitempty"        validate:"omitempty,isodate"`
	OrderAmount *float64 `json:"orderAmount,omitempty" validate:"omitempty,gte=0"`
	Notes       *string  `json:"notes,omitempty"       validate:"omitempty,max=1000"`
}

type SelectMonthRequest struct {
	MonthKey string  `json:"monthKey"         validate:"required,monthkey"`
	RoomID   *string `json:"roomId,omitempty"`
}

type StateResponse struct {
	State model.AppState `json:"state"`
	UI    model.UIState  `json:"ui"`
}

// SyncStatusResponse describes the latest full-state save of the session.
type SyncStatusResponse struct {
	Pending      bool              `json:"pending"`
	LastSaved    []string          `json:"lastSaved"`
	LastFailed   []string          `json:"lastFailed"`
	LastErrors   map[string]string `json:"lastErrors,omitempty"`
	LastSchema   bool              `json:"lastSchemaOnly"`
	LastFinished *string           `json:"lastFinishedAt,omitempty"`
}

type ExportResponse struct {
	MonthKey string `json:"monthKey"`
	URL      string `json:"url"`
}

// OptionalString trims value and maps blank to nil.
func OptionalString(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
