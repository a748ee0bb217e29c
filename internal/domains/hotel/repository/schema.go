package repository

import (
	"reziro/shared/constant"
	"reziro/shared/dto"
)

const (
	TableRooms           = "rooms"
	TableBookings        = "income_records"
	TableRoomFinancials  = "room_financials"
	TablePartners        = "partners"
	TableTransactions    = "transactions"
	TableMonthlyControls = "monthly_controls"
	TableForecasts       = "forecast_records"
	TableExpenses        = "expense_records"
)

// Entity types seed deterministic ids and tag rows in the multiplexed tables.
const (
	EntityRoom           = "room"
	EntityBooking        = "booking"
	EntityCostCatalog    = "cost_catalog"
	EntityHotelCost      = "hotel_cost"
	EntityPartner        = "partner"
	EntityManualReferral = "manual_referral"
	EntityForecast       = "forecast"
	EntityExpense        = "expense"

	// Older clients wrote manual referrals with type "income"; they load as referrals.
	legacyReferralType = "income"
)

const (
	colID                 = constant.FieldID
	colUserID             = constant.FieldUserID
	colCreatedAt          = constant.FieldCreatedAt
	colUpdatedAt          = constant.FieldUpdatedAt
	colRoomName           = "room_name"
	colRoomNumber         = "room_number"
	colRoomID             = "room_id"
	colBookingID          = "booking_id"
	colPartnerID          = "partner_id"
	colStartDate          = "start_date"
	colEndDate            = "end_date"
	colMonthKey           = "month_key"
	colWeekOfMonth        = "week_of_month"
	colPricePerNight      = "price_per_night"
	colNightsCount        = "nights_count"
	colIncome             = "income"
	colAmount             = "amount"
	colExtraExpenses      = "extra_expenses"
	colSelectedRoomCosts  = "selected_room_costs"
	colSelectedHotelCosts = "selected_hotel_costs"
	colPartnerReferrals   = "partner_referrals"
	colTotals             = "totals"
	colMetrics            = "metrics"
	colCustomer           = "customer"
	colVATEnabled         = "vat_enabled"
	colVATAmount          = "vat_amount"
	colTotalAmount        = "total_amount"
	colType               = "type"
	colEntityType         = "entity_type"
	colLabel              = "label"
	colUnitCost           = "unit_cost"
	colDefaultQty         = "default_qty"
	colIsActive           = "is_active"
	colCategory           = "category"
	colFrequencyType      = "frequency_type"
	colPeriodKey          = "period_key"
	colName               = "name"
	colBusinessName       = "business_name"
	colPhone              = "phone"
	colEmail              = "email"
	colCommissionType     = "commission_type"
	colCommissionValue    = "commission_value"
	colDiscountForGuests  = "discount_for_guests"
	colLocation           = "location"
	colNotes              = "notes"
	colGuestsCount        = "guests_count"
	colDate               = "date"
	colCommissionEarned   = "commission_earned"
	colIsLocked           = "is_locked"
	colLockedAt           = "locked_at"
	colExpectedAmount     = "expected_amount"
	colConfidence         = "confidence"
	colPeriod             = "period"
	colDescription        = "description"
)

// tableSchema describes one physical table: the columns it accepts, the key
// an upsert resolves conflicts on, and how far a sync-delete may reach.
type tableSchema struct {
	name     string
	columns  []string
	conflict []string
	// syncScope narrows sync-deletes beyond user_id; nil means no sync-delete.
	syncScope func(userID string) dto.FilterGroup
}

func (t tableSchema) allows(column string) bool {
	for _, allowed := range t.columns {
		if allowed == column {
			return true
		}
	}

	return false
}

func byUser(userID string) dto.FilterGroup {
	return dto.And(dto.Eq(colUserID, userID))
}

// byUserAndTag limits a multiplexed table to the row kinds this adapter owns.
func byUserAndTag(column string, tags ...string) func(userID string) dto.FilterGroup {
	return func(userID string) dto.FilterGroup {
		return dto.And(
			dto.Eq(colUserID, userID),
			dto.In(column, tags),
		)
	}
}

var (
	roomsTable = tableSchema{
		name:      TableRooms,
		columns:   []string{colID, colUserID, colRoomName, colRoomNumber, colCreatedAt},
		conflict:  []string{colID},
		syncScope: byUser,
	}

	bookingsTable = tableSchema{
		name: TableBookings,
		columns: []string{
			colID, colUserID, colRoomID, colStartDate, colEndDate, colMonthKey, colWeekOfMonth,
			colPricePerNight, colNightsCount, colIncome, colAmount, colExtraExpenses,
			colSelectedRoomCosts, colSelectedHotelCosts, colPartnerReferrals,
			colTotals, colMetrics, colCustomer, colVATEnabled, colVATAmount, colTotalAmount,
			colCreatedAt, colUpdatedAt,
		},
		conflict:  []string{colID},
		syncScope: byUser,
	}

	roomFinancialsTable = tableSchema{
		name: TableRoomFinancials,
		columns: []string{
			colID, colUserID, colRoomID, colType, colEntityType, colLabel, colUnitCost, colDefaultQty,
			colIsActive, colCategory, colAmount, colFrequencyType, colPeriodKey, colCreatedAt, colUpdatedAt,
		},
		conflict:  []string{colID},
		syncScope: byUserAndTag(colEntityType, EntityCostCatalog, EntityHotelCost),
	}

	partnersTable = tableSchema{
		name: TablePartners,
		columns: []string{
			colID, colUserID, colName, colBusinessName, colType, colPhone, colEmail, colCommissionType,
			colCommissionValue, colDiscountForGuests, colLocation, colNotes, colIsActive, colCreatedAt, colUpdatedAt,
		},
		conflict:  []string{colID},
		syncScope: byUser,
	}

	transactionsTable = tableSchema{
		name: TableTransactions,
		columns: []string{
			colID, colUserID, colPartnerID, colGuestsCount, colDate, colNotes, colCommissionEarned,
			colMonthKey, colCreatedAt, colType, colAmount,
		},
		conflict:  []string{colID},
		syncScope: byUserAndTag(colType, EntityManualReferral, legacyReferralType),
	}

	monthlyControlsTable = tableSchema{
		name:     TableMonthlyControls,
		columns:  []string{colMonthKey, colUserID, colIsLocked, colLockedAt},
		conflict: []string{colUserID, colMonthKey},
	}

	forecastsTable = tableSchema{
		name: TableForecasts,
		columns: []string{
			colID, colUserID, colMonthKey, colCategory, colExpectedAmount, colConfidence, colPeriod, colType, colCreatedAt,
		},
		conflict:  []string{colID},
		syncScope: byUser,
	}

	expensesTable = tableSchema{
		name: TableExpenses,
		columns: []string{
			colID, colUserID, colType, colDescription, colAmount, colDate, colMonthKey, colRoomID, colBookingID,
			colSelectedRoomCosts, colSelectedHotelCosts, colCreatedAt, colUpdatedAt,
		},
		conflict:  []string{colID},
		syncScope: byUser,
	}
)

// Tables lists every table in save and report order.
func Tables() []string {
	return []string{
		TableRooms, TableBookings, TableRoomFinancials, TablePartners,
		TableTransactions, TableMonthlyControls, TableForecasts, TableExpenses,
	}
}
