package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"reziro/internal/domains/hotel/model"
	"reziro/shared/constant"
	gRepo "reziro/shared/repository"
	"strconv"
	"strings"
	"time"
)

var errUnsupportedValue = errors.New("unsupported column value")

func RoomToRow(userID string, room model.Room) gRepo.Row {
	return gRepo.Row{
		colID:         room.ID,
		colUserID:     userID,
		colRoomName:   room.Name,
		colRoomNumber: optional(room.Number),
		colCreatedAt:  timestamp(room.CreatedAt),
	}
}

func RoomFromRow(row gRepo.Row) (model.Room, error) {
	r := rowReader{row: row}

	room := model.Room{
		ID:        r.str(colID),
		Name:      r.str(colRoomName),
		Number:    r.optStr(colRoomNumber),
		CreatedAt: r.timeAt(colCreatedAt),
	}

	return room, r.err
}

func BookingToRow(userID string, booking model.Booking) gRepo.Row {
	row := gRepo.Row{
		colID:                 booking.ID,
		colUserID:             userID,
		colRoomID:             booking.RoomID,
		colStartDate:          booking.StartDate,
		colEndDate:            booking.EndDate,
		colMonthKey:           booking.MonthKey,
		colWeekOfMonth:        booking.WeekOfMonth,
		colPricePerNight:      booking.PricePerNight,
		colNightsCount:        booking.NightsCount,
		colIncome:             booking.Income,
		colAmount:             booking.Income,
		colExtraExpenses:      booking.ExtraExpenses,
		colSelectedRoomCosts:  jsonText(booking.SelectedRoomCosts),
		colSelectedHotelCosts: jsonText(booking.SelectedHotelCosts),
		colPartnerReferrals:   nil,
		colTotals:             jsonText(booking.Totals),
		colMetrics:            jsonText(booking.Metrics),
		colCustomer:           nil,
		colVATEnabled:         optional(booking.VATEnabled),
		colVATAmount:          optional(booking.VATAmount),
		colTotalAmount:        optional(booking.TotalAmount),
		colCreatedAt:          timestamp(booking.CreatedAt),
		colUpdatedAt:          timestamp(booking.UpdatedAt),
	}

	if booking.PartnerReferrals != nil {
		row[colPartnerReferrals] = jsonText(booking.PartnerReferrals)
	}

	if booking.Customer != nil {
		row[colCustomer] = jsonText(booking.Customer)
	}

	return row
}

func BookingFromRow(row gRepo.Row) (model.Booking, error) {
	r := rowReader{row: row}

	booking := model.Booking{
		ID:            r.str(colID),
		RoomID:        r.str(colRoomID),
		StartDate:     r.date(colStartDate),
		EndDate:       r.date(colEndDate),
		MonthKey:      r.str(colMonthKey),
		WeekOfMonth:   r.integer(colWeekOfMonth),
		PricePerNight: r.number(colPricePerNight),
		NightsCount:   r.integer(colNightsCount),
		Income:        r.number(colIncome),
		ExtraExpenses: r.number(colExtraExpenses),
		VATEnabled:    r.optBoolean(colVATEnabled),
		VATAmount:     r.optNumber(colVATAmount),
		TotalAmount:   r.optNumber(colTotalAmount),
		CreatedAt:     r.timeAt(colCreatedAt),
		UpdatedAt:     r.timeAt(colUpdatedAt),
	}

	r.decode(colSelectedRoomCosts, &booking.SelectedRoomCosts)
	r.decode(colSelectedHotelCosts, &booking.SelectedHotelCosts)
	r.decode(colPartnerReferrals, &booking.PartnerReferrals)
	r.decode(colTotals, &booking.Totals)
	r.decode(colMetrics, &booking.Metrics)
	r.decode(colCustomer, &booking.Customer)

	return booking, r.err
}

func CostCatalogItemToRow(userID string, item model.CostCatalogItem) gRepo.Row {
	row := gRepo.Row{
		colID:         item.ID,
		colUserID:     userID,
		colRoomID:     optional(item.RoomID),
		colType:       string(item.Type),
		colEntityType: EntityCostCatalog,
		colLabel:      item.Label,
		colUnitCost:   item.UnitCost,
		colDefaultQty: item.DefaultQty,
		colIsActive:   item.IsActive,
		colCategory:   nil,
	}

	if item.Category != nil {
		row[colCategory] = string(*item.Category)
	}

	return row
}

func CostCatalogItemFromRow(row gRepo.Row) (model.CostCatalogItem, error) {
	r := rowReader{row: row}

	item := model.CostCatalogItem{
		ID:         r.str(colID),
		Type:       model.CostType(r.str(colType)),
		Label:      r.str(colLabel),
		UnitCost:   r.number(colUnitCost),
		DefaultQty: r.number(colDefaultQty),
		IsActive:   r.boolean(colIsActive),
		RoomID:     r.optStr(colRoomID),
	}

	if category := r.optStr(colCategory); category != nil {
		value := model.CatalogCategory(*category)
		item.Category = &value
	}

	return item, r.err
}

func HotelCostToRow(userID string, cost model.HotelCost) gRepo.Row {
	return gRepo.Row{
		colID:            cost.ID,
		colUserID:        userID,
		colType:          string(model.CostTypeHotel),
		colEntityType:    EntityHotelCost,
		colLabel:         cost.Label,
		colAmount:        cost.Amount,
		colCategory:      string(cost.Category),
		colIsActive:      cost.IsActive,
		colFrequencyType: string(cost.FrequencyType),
		colPeriodKey:     cost.PeriodKey,
		colCreatedAt:     timestamp(cost.CreatedAt),
		colUpdatedAt:     optionalTimestamp(cost.UpdatedAt),
	}
}

func HotelCostFromRow(row gRepo.Row) (model.HotelCost, error) {
	r := rowReader{row: row}

	cost := model.HotelCost{
		ID:            r.str(colID),
		Label:         r.str(colLabel),
		Amount:        r.number(colAmount),
		Category:      model.HotelCostCategory(r.str(colCategory)),
		IsActive:      r.boolean(colIsActive),
		FrequencyType: model.Frequency(r.str(colFrequencyType)),
		PeriodKey:     r.str(colPeriodKey),
		CreatedAt:     r.timeAt(colCreatedAt),
		UpdatedAt:     r.optTimeAt(colUpdatedAt),
	}

	if cost.FrequencyType == "" {
		cost.FrequencyType = model.FrequencyMonthly
	}

	return cost, r.err
}

func PartnerToRow(userID string, partner model.Partner) gRepo.Row {
	return gRepo.Row{
		colID:                partner.ID,
		colUserID:            userID,
		colName:              partner.Name,
		colBusinessName:      partner.Name,
		colType:              string(partner.Type),
		colPhone:             partner.Phone,
		colEmail:             partner.Email,
		colCommissionType:    string(partner.CommissionType),
		colCommissionValue:   partner.CommissionValue,
		colDiscountForGuests: optional(partner.DiscountForGuests),
		colLocation:          optional(partner.Location),
		colNotes:             optional(partner.Notes),
		colIsActive:          partner.IsActive,
		colCreatedAt:         timestamp(partner.CreatedAt),
		colUpdatedAt:         optionalTimestamp(partner.UpdatedAt),
	}
}

func PartnerFromRow(row gRepo.Row) (model.Partner, error) {
	r := rowReader{row: row}

	partner := model.Partner{
		ID:                r.str(colID),
		Name:              r.str(colName),
		Type:              model.PartnerType(r.str(colType)),
		Phone:             r.str(colPhone),
		Email:             r.str(colEmail),
		CommissionType:    model.CommissionType(r.str(colCommissionType)),
		CommissionValue:   r.number(colCommissionValue),
		DiscountForGuests: r.optNumber(colDiscountForGuests),
		Location:          r.optStr(colLocation),
		Notes:             r.optStr(colNotes),
		IsActive:          r.boolean(colIsActive),
		CreatedAt:         r.timeAt(colCreatedAt),
		UpdatedAt:         r.optTimeAt(colUpdatedAt),
	}

	if partner.Name == "" {
		partner.Name = r.str(colBusinessName)
	}

	return partner, r.err
}

func ManualReferralToRow(userID string, referral model.ManualReferral) gRepo.Row {
	return gRepo.Row{
		colID:               referral.ID,
		colUserID:           userID,
		colPartnerID:        referral.PartnerID,
		colGuestsCount:      referral.GuestsCount,
		colDate:             referral.Date,
		colNotes:            optional(referral.Notes),
		colCommissionEarned: referral.CommissionEarned,
		colMonthKey:         referral.MonthKey,
		colCreatedAt:        timestamp(referral.CreatedAt),
		colType:             EntityManualReferral,
		colAmount:           referral.CommissionEarned,
	}
}

func ManualReferralFromRow(row gRepo.Row) (model.ManualReferral, error) {
	r := rowReader{row: row}

	referral := model.ManualReferral{
		ID:               r.str(colID),
		PartnerID:        r.str(colPartnerID),
		GuestsCount:      r.integer(colGuestsCount),
		Date:             r.date(colDate),
		Notes:            r.optStr(colNotes),
		CommissionEarned: r.number(colCommissionEarned),
		MonthKey:         r.str(colMonthKey),
		CreatedAt:        r.timeAt(colCreatedAt),
	}

	if r.absent(colCommissionEarned) {
		referral.CommissionEarned = r.number(colAmount)
	}

	return referral, r.err
}

func MonthLockToRow(userID string, lock model.MonthLock) gRepo.Row {
	return gRepo.Row{
		colMonthKey: lock.MonthKey,
		colUserID:   userID,
		colIsLocked: lock.IsLocked,
		colLockedAt: optionalTimestamp(lock.LockedAt),
	}
}

func MonthLockFromRow(row gRepo.Row) (model.MonthLock, error) {
	r := rowReader{row: row}

	lock := model.MonthLock{
		MonthKey: r.str(colMonthKey),
		IsLocked: r.boolean(colIsLocked),
		LockedAt: r.optTimeAt(colLockedAt),
	}

	return lock, r.err
}

func ForecastToRow(userID string, forecast model.Forecast) gRepo.Row {
	return gRepo.Row{
		colID:             forecast.ID,
		colUserID:         userID,
		colMonthKey:       forecast.MonthKey,
		colCategory:       forecast.Category,
		colExpectedAmount: forecast.ExpectedAmount,
		colConfidence:     forecast.Confidence,
		colPeriod:         string(forecast.Period),
		colType:           string(forecast.Type),
		colCreatedAt:      timestamp(forecast.CreatedAt),
	}
}

func ForecastFromRow(row gRepo.Row) (model.Forecast, error) {
	r := rowReader{row: row}

	forecast := model.Forecast{
		ID:             r.str(colID),
		MonthKey:       r.str(colMonthKey),
		Category:       r.str(colCategory),
		ExpectedAmount: r.number(colExpectedAmount),
		Confidence:     r.number(colConfidence),
		Period:         model.Frequency(r.str(colPeriod)),
		Type:           model.ForecastType(r.str(colType)),
		CreatedAt:      r.timeAt(colCreatedAt),
	}

	return forecast, r.err
}

func ExpenseToRow(userID string, expense model.Expense) gRepo.Row {
	row := gRepo.Row{
		colID:                 expense.ID,
		colUserID:             userID,
		colType:               string(expense.Type),
		colDescription:        expense.Description,
		colAmount:             expense.Amount,
		colDate:               expense.Date,
		colMonthKey:           expense.MonthKey,
		colRoomID:             optional(expense.RoomID),
		colBookingID:          optional(expense.BookingID),
		colSelectedRoomCosts:  nil,
		colSelectedHotelCosts: nil,
		colCreatedAt:          timestamp(expense.CreatedAt),
		colUpdatedAt:          timestamp(expense.UpdatedAt),
	}

	if expense.SelectedRoomCosts != nil {
		row[colSelectedRoomCosts] = jsonText(expense.SelectedRoomCosts)
	}

	if expense.SelectedHotelCosts != nil {
		row[colSelectedHotelCosts] = jsonText(expense.SelectedHotelCosts)
	}

	return row
}

func ExpenseFromRow(row gRepo.Row) (model.Expense, error) {
	r := rowReader{row: row}

	expense := model.Expense{
		ID:          r.str(colID),
		Type:        model.ExpenseType(r.str(colType)),
		Description: r.str(colDescription),
		Amount:      r.number(colAmount),
		Date:        r.date(colDate),
		MonthKey:    r.str(colMonthKey),
		RoomID:      r.optStr(colRoomID),
		BookingID:   r.optStr(colBookingID),
		CreatedAt:   r.timeAt(colCreatedAt),
		UpdatedAt:   r.timeAt(colUpdatedAt),
	}

	r.decode(colSelectedRoomCosts, &expense.SelectedRoomCosts)
	r.decode(colSelectedHotelCosts, &expense.SelectedHotelCosts)

	return expense, r.err
}

func optional[T any](value *T) any {
	if value == nil {
		return nil
	}

	return *value
}

func timestamp(value time.Time) any {
	if value.IsZero() {
		return nil
	}

	return value.UTC().Format(constant.TimestampFormat)
}

func optionalTimestamp(value *time.Time) any {
	if value == nil {
		return nil
	}

	return timestamp(*value)
}

// jsonText renders nested values as JSON text. The model types marshal
// without error.
func jsonText(value any) string {
	raw, _ := json.Marshal(value)

	return string(raw)
}

// rowReader decodes columns from a driver row. The first conversion error
// sticks and later reads return zero values.
type rowReader struct {
	row gRepo.Row
	err error
}

func (r *rowReader) fail(column string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("column %s: %w", column, err)
	}
}

func (r *rowReader) absent(column string) bool {
	value, ok := r.row[column]

	return !ok || value == nil
}

func (r *rowReader) str(column string) string {
	switch value := r.row[column].(type) {
	case nil:
		return ""
	case string:
		return value
	case []byte:
		return string(value)
	case time.Time:
		return value.UTC().Format(constant.TimestampFormat)
	default:
		return fmt.Sprint(value)
	}
}

// date reads a DATE column as YYYY-MM-DD. The driver hands DATE back as a
// midnight time.Time; its own zone is kept so the calendar day never shifts.
func (r *rowReader) date(column string) string {
	switch value := r.row[column].(type) {
	case time.Time:
		return value.Format(constant.DateOnlyFormat)
	case nil:
		return ""
	default:
		raw := r.str(column)
		if day, _, found := strings.Cut(raw, "T"); found {
			return day
		}

		return raw
	}
}

func (r *rowReader) optStr(column string) *string {
	if r.absent(column) {
		return nil
	}

	value := r.str(column)
	if value == "" {
		return nil
	}

	return &value
}

func (r *rowReader) number(column string) float64 {
	switch value := r.row[column].(type) {
	case nil:
		return 0
	case float64:
		return value
	case float32:
		return float64(value)
	case int64:
		return float64(value)
	case int32:
		return float64(value)
	case int:
		return float64(value)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			r.fail(column, err)
		}

		return parsed
	default:
		r.fail(column, fmt.Errorf("%w: %T", errUnsupportedValue, value))

		return 0
	}
}

func (r *rowReader) optNumber(column string) *float64 {
	if r.absent(column) {
		return nil
	}

	value := r.number(column)

	return &value
}

func (r *rowReader) integer(column string) int {
	switch value := r.row[column].(type) {
	case nil:
		return 0
	case int:
		return value
	case int64:
		return int(value)
	case int32:
		return int(value)
	case float64:
		return int(value)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			r.fail(column, err)
		}

		return int(parsed)
	default:
		r.fail(column, fmt.Errorf("%w: %T", errUnsupportedValue, value))

		return 0
	}
}

func (r *rowReader) boolean(column string) bool {
	switch value := r.row[column].(type) {
	case nil:
		return false
	case bool:
		return value
	case int64:
		return value != 0
	case int:
		return value != 0
	case string:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			r.fail(column, err)
		}

		return parsed
	default:
		r.fail(column, fmt.Errorf("%w: %T", errUnsupportedValue, value))

		return false
	}
}

func (r *rowReader) optBoolean(column string) *bool {
	if r.absent(column) {
		return nil
	}

	value := r.boolean(column)

	return &value
}

func (r *rowReader) timeAt(column string) time.Time {
	switch value := r.row[column].(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return value.UTC().Truncate(time.Millisecond)
	case string:
		if value == "" {
			return time.Time{}
		}

		parsed, err := time.Parse(constant.TimestampFormat, value)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339Nano, value)
		}

		if err != nil {
			r.fail(column, err)

			return time.Time{}
		}

		return parsed.UTC().Truncate(time.Millisecond)
	default:
		r.fail(column, fmt.Errorf("%w: %T", errUnsupportedValue, value))

		return time.Time{}
	}
}

func (r *rowReader) optTimeAt(column string) *time.Time {
	if r.absent(column) {
		return nil
	}

	value := r.timeAt(column)
	if value.IsZero() {
		return nil
	}

	return &value
}

func (r *rowReader) decode(column string, dst any) {
	raw := r.str(column)
	if raw == "" {
		return
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		r.fail(column, err)
	}
}
