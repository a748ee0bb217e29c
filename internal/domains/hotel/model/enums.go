package model

import "slices"

type CostType string

const (
	CostTypeRoom  CostType = "room"
	CostTypeHotel CostType = "hotel"
)

func (t CostType) Valid() bool {
	return t == CostTypeRoom || t == CostTypeHotel
}

type CatalogCategory string

const (
	CatalogCategoryBase  CatalogCategory = "base"
	CatalogCategoryTreat CatalogCategory = "treat"
	CatalogCategoryExtra CatalogCategory = "extra"
)

func (c CatalogCategory) Valid() bool {
	return slices.Contains([]CatalogCategory{CatalogCategoryBase, CatalogCategoryTreat, CatalogCategoryExtra}, c)
}

type HotelCostCategory string

const (
	HotelCostEmployees   HotelCostCategory = "employees"
	HotelCostArnona      HotelCostCategory = "arnona"
	HotelCostElectricity HotelCostCategory = "electricity"
	HotelCostWater       HotelCostCategory = "water"
	HotelCostMaintenance HotelCostCategory = "maintenance"
	HotelCostCleaning    HotelCostCategory = "cleaning"
	HotelCostRoomRent    HotelCostCategory = "room_rent"
	HotelCostOther       HotelCostCategory = "other"
)

var hotelCostCategories = []HotelCostCategory{
	HotelCostEmployees,
	HotelCostArnona,
	HotelCostElectricity,
	HotelCostWater,
	HotelCostMaintenance,
	HotelCostCleaning,
	HotelCostRoomRent,
	HotelCostOther,
}

func (c HotelCostCategory) Valid() bool {
	return slices.Contains(hotelCostCategories, c)
}

// Frequency is the recurrence bucket of a hotel cost and the horizon of a forecast.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyQuarterly || f == FrequencyYearly
}

type PartnerType string

const (
	PartnerTypeRestaurant PartnerType = "restaurant"
	PartnerTypeSpa        PartnerType = "spa"
	PartnerTypeShop       PartnerType = "shop"
	PartnerTypeTour       PartnerType = "tour"
	PartnerTypeAttraction PartnerType = "attraction"
	PartnerTypeOther      PartnerType = "other"
)

func (t PartnerType) Valid() bool {
	return slices.Contains([]PartnerType{
		PartnerTypeRestaurant,
		PartnerTypeSpa,
		PartnerTypeShop,
		PartnerTypeTour,
		PartnerTypeAttraction,
		PartnerTypeOther,
	}, t)
}

type CommissionType string

const (
	CommissionPercentage CommissionType = "percentage"
	CommissionFixed      CommissionType = "fixed"
)

func (t CommissionType) Valid() bool {
	return t == CommissionPercentage || t == CommissionFixed
}

type ForecastType string

const (
	ForecastIncome  ForecastType = "income"
	ForecastExpense ForecastType = "expense"
)

func (t ForecastType) Valid() bool {
	return t == ForecastIncome || t == ForecastExpense
}

type ExpenseType string

const (
	ExpenseTypeBooking ExpenseType = "booking"
	ExpenseTypeRoom    ExpenseType = "room"
	ExpenseTypeHotel   ExpenseType = "hotel"
	ExpenseTypeCustom  ExpenseType = "custom"
)

func (t ExpenseType) Valid() bool {
	return slices.Contains([]ExpenseType{ExpenseTypeBooking, ExpenseTypeRoom, ExpenseTypeHotel, ExpenseTypeCustom}, t)
}
