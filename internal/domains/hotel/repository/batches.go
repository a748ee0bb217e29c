package repository

import (
	"reziro/internal/domains/hotel/model"
	gRepo "reziro/shared/repository"
	"slices"
	"strings"
)

// batch is the row set for one physical table within a single save.
type batch struct {
	schema tableSchema
	rows   []gRepo.Row
}

func stateBatches(userID string, state model.AppState) []batch {
	return []batch{
		roomsBatch(userID, state.Rooms),
		bookingsBatch(userID, state.Bookings),
		roomFinancialsBatch(userID, state.CostCatalog, state.HotelCosts),
		partnersBatch(userID, state.Partners),
		transactionsBatch(userID, state.ManualReferrals),
		monthlyControlsBatch(userID, state.MonthLocks),
		forecastsBatch(userID, state.Forecasts),
		expensesBatch(userID, state.Expenses),
	}
}

func roomsBatch(userID string, rooms []model.Room) batch {
	rows := make([]gRepo.Row, 0, len(rooms))
	for _, room := range rooms {
		rows = append(rows, withStableIDs(userID, RoomToRow(userID, room), EntityRoom))
	}

	return batch{schema: roomsTable, rows: rows}
}

func bookingsBatch(userID string, bookings []model.Booking) batch {
	rows := make([]gRepo.Row, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, withStableIDs(userID, BookingToRow(userID, booking), EntityBooking))
	}

	return batch{schema: bookingsTable, rows: rows}
}

// roomFinancialsBatch merges catalog items and hotel costs; entity_type tells them apart.
func roomFinancialsBatch(userID string, catalog []model.CostCatalogItem, hotelCosts []model.HotelCost) batch {
	rows := make([]gRepo.Row, 0, len(catalog)+len(hotelCosts))
	for _, item := range catalog {
		rows = append(rows, withStableIDs(userID, CostCatalogItemToRow(userID, item), EntityCostCatalog))
	}

	for _, cost := range hotelCosts {
		rows = append(rows, withStableIDs(userID, HotelCostToRow(userID, cost), EntityHotelCost))
	}

	return batch{schema: roomFinancialsTable, rows: rows}
}

func partnersBatch(userID string, partners []model.Partner) batch {
	rows := make([]gRepo.Row, 0, len(partners))
	for _, partner := range partners {
		rows = append(rows, withStableIDs(userID, PartnerToRow(userID, partner), EntityPartner))
	}

	return batch{schema: partnersTable, rows: rows}
}

func transactionsBatch(userID string, referrals []model.ManualReferral) batch {
	rows := make([]gRepo.Row, 0, len(referrals))
	for _, referral := range referrals {
		rows = append(rows, withStableIDs(userID, ManualReferralToRow(userID, referral), EntityManualReferral))
	}

	return batch{schema: transactionsTable, rows: rows}
}

func monthlyControlsBatch(userID string, locks map[string]model.MonthLock) batch {
	keys := make([]string, 0, len(locks))
	for key := range locks {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	rows := make([]gRepo.Row, 0, len(keys))
	for _, key := range keys {
		lock := locks[key]
		if lock.MonthKey == "" {
			lock.MonthKey = key
		}

		rows = append(rows, MonthLockToRow(userID, lock))
	}

	return batch{schema: monthlyControlsTable, rows: rows}
}

func forecastsBatch(userID string, forecasts []model.Forecast) batch {
	rows := make([]gRepo.Row, 0, len(forecasts))
	for _, forecast := range forecasts {
		rows = append(rows, withStableIDs(userID, ForecastToRow(userID, forecast), EntityForecast))
	}

	return batch{schema: forecastsTable, rows: rows}
}

func expensesBatch(userID string, expenses []model.Expense) batch {
	rows := make([]gRepo.Row, 0, len(expenses))
	for _, expense := range expenses {
		rows = append(rows, withStableIDs(userID, ExpenseToRow(userID, expense), EntityExpense))
	}

	return batch{schema: expensesTable, rows: rows}
}

// withStableIDs rewrites the row id and its foreign keys to storage ids.
func withStableIDs(userID string, row gRepo.Row, entityType string) gRepo.Row {
	if id, ok := row[colID].(string); ok {
		row[colID] = StableID(userID, entityType, id)
	}

	if ref, ok := row[colRoomID]; ok {
		row[colRoomID] = stableRef(userID, EntityRoom, ref)
	}

	if ref, ok := row[colBookingID]; ok {
		row[colBookingID] = stableRef(userID, EntityBooking, ref)
	}

	if ref, ok := row[colPartnerID]; ok {
		row[colPartnerID] = stableRef(userID, EntityPartner, ref)
	}

	return row
}

// sanitize drops columns the table does not know. It returns the dropped
// column names, sorted and unique.
func sanitize(schema tableSchema, rows []gRepo.Row) ([]gRepo.Row, []string) {
	stripped := []string{}

	for _, row := range rows {
		for column := range row {
			if schema.allows(column) {
				continue
			}

			delete(row, column)

			if !slices.Contains(stripped, column) {
				stripped = append(stripped, column)
			}
		}
	}

	slices.Sort(stripped)

	return rows, stripped
}

// checkKeys fails when any row lacks a value for a conflict column.
func checkKeys(schema tableSchema, rows []gRepo.Row) error {
	for _, row := range rows {
		for _, column := range schema.conflict {
			value, ok := row[column]
			if !ok || value == nil {
				return ErrMissingKey
			}

			if text, isText := value.(string); isText && strings.TrimSpace(text) == "" {
				return ErrMissingKey
			}
		}
	}

	return nil
}

// dedupe keeps the last row for each conflict key, in first-seen order. A
// single upsert statement cannot touch the same row twice.
func dedupe(schema tableSchema, rows []gRepo.Row) []gRepo.Row {
	index := map[string]int{}
	result := make([]gRepo.Row, 0, len(rows))

	for _, row := range rows {
		parts := make([]string, 0, len(schema.conflict))
		for _, column := range schema.conflict {
			value, _ := row[column].(string)
			parts = append(parts, value)
		}

		key := strings.Join(parts, "\x00")
		if at, seen := index[key]; seen {
			result[at] = row

			continue
		}

		index[key] = len(result)
		result = append(result, row)
	}

	return result
}

func rowIDs(rows []gRepo.Row) []string {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if id, ok := row[colID].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}
