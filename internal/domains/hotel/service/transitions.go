package service

import (
	"errors"
	"fmt"
	"reziro/internal/domains/hotel/calc"
	"reziro/internal/domains/hotel/conflict"
	"reziro/internal/domains/hotel/model"
	"reziro/internal/domains/hotel/model/dto"
	"reziro/internal/domains/hotel/repository"
	"reziro/shared/timezone"
	"slices"
	"strings"
	"time"
)

var (
	ErrMonthLocked     = errors.New("month is locked")
	ErrBookingConflict = errors.New("room is already booked for these dates")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// Env is the only source of time and ids for transitions.
type Env struct {
	Now   func() time.Time
	NewID func() string
}

func DefaultEnv() Env {
	return Env{Now: timezone.NowUTC, NewID: repository.NewID}
}

func notFound(entity, id string) error {
	return fmt.Errorf("%s %q: %w", entity, id, ErrNotFound)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Transitions copy before writing so a rejected or concurrent reader never
// observes a half-applied state.

func appended[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)

	return append(out, item)
}

func replacedAt[T any](items []T, index int, item T) []T {
	out := slices.Clone(items)
	out[index] = item

	return out
}

func removedAt[T any](items []T, index int) []T {
	return slices.Delete(slices.Clone(items), index, index+1)
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

func roomID(r model.Room) string { return r.ID }

func bookingID(b model.Booking) string { return b.ID }

func catalogID(c model.CostCatalogItem) string { return c.ID }

func hotelCostID(c model.HotelCost) string { return c.ID }

func partnerID(p model.Partner) string { return p.ID }

func referralID(r model.ManualReferral) string { return r.ID }

func forecastID(f model.Forecast) string { return f.ID }

func expenseID(e model.Expense) string { return e.ID }

func deref[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}

	return *value
}

// Rooms

func AddRoom(state model.AppState, req dto.CreateRoomRequest, env Env) (model.AppState, model.Room, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return state, model.Room{}, invalid("room name is required")
	}

	room := model.Room{
		ID:        env.NewID(),
		Name:      name,
		Number:    dto.OptionalString(req.Number),
		CreatedAt: env.Now(),
	}

	state.Rooms = appended(state.Rooms, room)

	return state, room, nil
}

func UpdateRoom(state model.AppState, id string, req dto.UpdateRoomRequest) (model.AppState, model.Room, error) {
	index := indexByID(state.Rooms, id, roomID)
	if index < 0 {
		return state, model.Room{}, notFound("room", id)
	}

	room := state.Rooms[index]

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return state, model.Room{}, invalid("room name is required")
		}

		room.Name = name
	}

	if req.Number != nil {
		room.Number = dto.OptionalString(req.Number)
	}

	state.Rooms = replacedAt(state.Rooms, index, room)

	return state, room, nil
}

// DeleteRoom removes the room and every booking that references it.
func DeleteRoom(state model.AppState, id string) (model.AppState, error) {
	index := indexByID(state.Rooms, id, roomID)
	if index < 0 {
		return state, notFound("room", id)
	}

	state.Rooms = removedAt(state.Rooms, index)
	state.Bookings = slices.DeleteFunc(slices.Clone(state.Bookings), func(b model.Booking) bool {
		return b.RoomID == id
	})

	return state, nil
}

// Bookings

// BookingRejection explains why a booking for roomID over [startDate, endDate)
// would be refused, or returns nil. Locks only guard new bookings, so
// excludeID (an existing booking being edited) skips the lock check.
func BookingRejection(state model.AppState, roomID, startDate, endDate, excludeID string) error {
	if excludeID == "" && state.IsMonthLocked(calc.MonthKey(startDate)) {
		return fmt.Errorf("%s: %w", calc.MonthKey(startDate), ErrMonthLocked)
	}

	if conflict.HasConflict(state.Bookings, roomID, startDate, endDate, excludeID) {
		return ErrBookingConflict
	}

	return nil
}

func HasConflict(state model.AppState, roomID, startDate, endDate, excludeID string) bool {
	return conflict.HasConflict(state.Bookings, roomID, startDate, endDate, excludeID)
}

func validRange(startDate, endDate string) error {
	start, err := calc.ParseDate(startDate)
	if err != nil {
		return invalid("start date %q", startDate)
	}

	end, err := calc.ParseDate(endDate)
	if err != nil {
		return invalid("end date %q", endDate)
	}

	if end.Before(start) {
		return invalid("end date %s is before start date %s", endDate, startDate)
	}

	return nil
}

func snapshotCosts(state model.AppState, lines []dto.SelectedCostRequest) ([]model.SelectedCost, error) {
	out := make([]model.SelectedCost, 0, len(lines))

	for _, line := range lines {
		item, ok := state.CatalogItemByID(line.CatalogID)
		if !ok {
			return nil, notFound("cost catalog item", line.CatalogID)
		}

		out = append(out, calc.SelectedCostFromCatalog(item, line.Qty))
	}

	return out, nil
}

func snapshotReferrals(state model.AppState, referrals []dto.PartnerReferralRequest, income float64) ([]model.PartnerReferral, error) {
	if referrals == nil {
		return nil, nil
	}

	out := make([]model.PartnerReferral, 0, len(referrals))

	for _, referral := range referrals {
		partner, ok := state.PartnerByID(referral.PartnerID)
		if !ok {
			return nil, notFound("partner", referral.PartnerID)
		}

		out = append(out, model.PartnerReferral{
			PartnerID:        partner.ID,
			PartnerName:      partner.Name,
			GuestsCount:      referral.GuestsCount,
			CommissionEarned: calc.BookingReferralCommission(partner, referral.GuestsCount, income),
			Date:             referral.Date,
		})
	}

	return out, nil
}

// CreateBooking validates the candidate against month locks and room
// overlaps, then builds it through the calculation engine.
func CreateBooking(state model.AppState, req dto.CreateBookingRequest, env Env) (model.AppState, model.Booking, error) {
	if _, ok := state.RoomByID(req.RoomID); !ok {
		return state, model.Booking{}, notFound("room", req.RoomID)
	}

	if err := validRange(req.StartDate, req.EndDate); err != nil {
		return state, model.Booking{}, err
	}

	if err := BookingRejection(state, req.RoomID, req.StartDate, req.EndDate, ""); err != nil {
		return state, model.Booking{}, err
	}

	roomCosts, err := snapshotCosts(state, req.SelectedRoomCosts)
	if err != nil {
		return state, model.Booking{}, err
	}

	hotelCosts, err := snapshotCosts(state, req.SelectedHotelCosts)
	if err != nil {
		return state, model.Booking{}, err
	}

	income := calc.Income(calc.NightsCount(req.StartDate, req.EndDate), req.PricePerNight)

	referrals, err := snapshotReferrals(state, req.PartnerReferrals, income)
	if err != nil {
		return state, model.Booking{}, err
	}

	now := env.Now()
	booking := calc.NormalizeAndComputeBooking(calc.BookingInput{
		ID:                 env.NewID(),
		RoomID:             req.RoomID,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		PricePerNight:      req.PricePerNight,
		ExtraExpenses:      req.ExtraExpenses,
		SelectedRoomCosts:  roomCosts,
		SelectedHotelCosts: hotelCosts,
		PartnerReferrals:   referrals,
		VATEnabled:         req.VATEnabled,
		Customer:           req.Customer.ToModel(),
		CreatedAt:          now,
	}, now)

	state.Bookings = appended(state.Bookings, booking)

	return state, booking, nil
}

// UpdateBooking merges the patch onto the stored booking and normalizes the
// result again. The overlap check excludes the booking itself; locks are not
// consulted for edits.
func UpdateBooking(state model.AppState, id string, req dto.UpdateBookingRequest, env Env) (model.AppState, model.Booking, error) {
	index := indexByID(state.Bookings, id, bookingID)
	if index < 0 {
		return state, model.Booking{}, notFound("booking", id)
	}

	input := calc.InputFromBooking(state.Bookings[index])

	if req.RoomID != nil {
		if _, ok := state.RoomByID(*req.RoomID); !ok {
			return state, model.Booking{}, notFound("room", *req.RoomID)
		}

		input.RoomID = *req.RoomID
	}

	input.StartDate = deref(req.StartDate, input.StartDate)
	input.EndDate = deref(req.EndDate, input.EndDate)
	input.PricePerNight = deref(req.PricePerNight, input.PricePerNight)
	input.ExtraExpenses = deref(req.ExtraExpenses, input.ExtraExpenses)
	input.VATEnabled = deref(req.VATEnabled, input.VATEnabled)

	if req.Customer != nil {
		input.Customer = req.Customer.ToModel()
	}

	if err := validRange(input.StartDate, input.EndDate); err != nil {
		return state, model.Booking{}, err
	}

	if err := BookingRejection(state, input.RoomID, input.StartDate, input.EndDate, id); err != nil {
		return state, model.Booking{}, err
	}

	var err error

	if req.SelectedRoomCosts != nil {
		if input.SelectedRoomCosts, err = snapshotCosts(state, *req.SelectedRoomCosts); err != nil {
			return state, model.Booking{}, err
		}
	}

	if req.SelectedHotelCosts != nil {
		if input.SelectedHotelCosts, err = snapshotCosts(state, *req.SelectedHotelCosts); err != nil {
			return state, model.Booking{}, err
		}
	}

	if req.PartnerReferrals != nil {
		income := calc.Income(calc.NightsCount(input.StartDate, input.EndDate), input.PricePerNight)

		if input.PartnerReferrals, err = snapshotReferrals(state, *req.PartnerReferrals, income); err != nil {
			return state, model.Booking{}, err
		}
	}

	booking := calc.NormalizeAndComputeBooking(input, env.Now())
	state.Bookings = replacedAt(state.Bookings, index, booking)

	return state, booking, nil
}

func DeleteBooking(state model.AppState, id string) (model.AppState, error) {
	index := indexByID(state.Bookings, id, bookingID)
	if index < 0 {
		return state, notFound("booking", id)
	}

	state.Bookings = removedAt(state.Bookings, index)

	return state, nil
}

// Month locks

func ToggleMonthLock(state model.AppState, monthKey string, env Env) (model.AppState, model.MonthLock, error) {
	if !calc.ValidMonthKey(monthKey) {
		return state, model.MonthLock{}, invalid("month key %q", monthKey)
	}

	lock := model.MonthLock{MonthKey: monthKey}
	if !state.IsMonthLocked(monthKey) {
		lockedAt := env.Now()
		lock.IsLocked = true
		lock.LockedAt = &lockedAt
	}

	locks := make(map[string]model.MonthLock, len(state.MonthLocks)+1)
	for key, value := range state.MonthLocks {
		locks[key] = value
	}

	locks[monthKey] = lock
	state.MonthLocks = locks

	return state, lock, nil
}

// Forecasts

func AddForecast(state model.AppState, req dto.CreateForecastRequest, env Env) (model.AppState, model.Forecast, error) {
	if !calc.ValidMonthKey(req.MonthKey) {
		return state, model.Forecast{}, invalid("month key %q", req.MonthKey)
	}

	forecast := model.Forecast{
		ID:             env.NewID(),
		MonthKey:       req.MonthKey,
		Category:       strings.TrimSpace(req.Category),
		ExpectedAmount: req.ExpectedAmount,
		Confidence:     req.Confidence,
		Period:         deref(req.Period, model.FrequencyMonthly),
		Type:           deref(req.Type, model.ForecastIncome),
		CreatedAt:      env.Now(),
	}

	state.Forecasts = appended(state.Forecasts, forecast)

	return state, forecast, nil
}

func UpdateForecast(state model.AppState, id string, req dto.UpdateForecastRequest) (model.AppState, model.Forecast, error) {
	index := indexByID(state.Forecasts, id, forecastID)
	if index < 0 {
		return state, model.Forecast{}, notFound("forecast", id)
	}

	forecast := state.Forecasts[index]

	if req.MonthKey != nil {
		if !calc.ValidMonthKey(*req.MonthKey) {
			return state, model.Forecast{}, invalid("month key %q", *req.MonthKey)
		}

		forecast.MonthKey = *req.MonthKey
	}

	if req.Category != nil {
		forecast.Category = strings.TrimSpace(*req.Category)
	}

	forecast.ExpectedAmount = deref(req.ExpectedAmount, forecast.ExpectedAmount)
	forecast.Confidence = deref(req.Confidence, forecast.Confidence)
	forecast.Period = deref(req.Period, forecast.Period)
	forecast.Type = deref(req.Type, forecast.Type)

	state.Forecasts = replacedAt(state.Forecasts, index, forecast)

	return state, forecast, nil
}

func DeleteForecast(state model.AppState, id string) (model.AppState, error) {
	index := indexByID(state.Forecasts, id, forecastID)
	if index < 0 {
		return state, notFound("forecast", id)
	}

	state.Forecasts = removedAt(state.Forecasts, index)

	return state, nil
}

// Expenses

func linesTotal(lines ...[]model.SelectedCost) float64 {
	var all []model.SelectedCost
	for _, group := range lines {
		all = append(all, group...)
	}

	return calc.CostTotals(all, nil).TotalRoomCosts
}

// AddExpense records the expense. With a booking id its cost lines are folded
// into that booking, and whatever part of the amount the lines do not cover
// is added to the booking's extra expenses; the booking is then normalized
// again so its totals and metrics stay derived.
func AddExpense(state model.AppState, req dto.CreateExpenseRequest, env Env) (model.AppState, model.Expense, error) {
	if _, err := calc.ParseDate(req.Date); err != nil {
		return state, model.Expense{}, invalid("expense date %q", req.Date)
	}

	roomCosts, err := snapshotCosts(state, req.SelectedRoomCosts)
	if err != nil {
		return state, model.Expense{}, err
	}

	hotelCosts, err := snapshotCosts(state, req.SelectedHotelCosts)
	if err != nil {
		return state, model.Expense{}, err
	}

	covered := linesTotal(roomCosts, hotelCosts)

	amount := req.Amount
	if amount == 0 {
		amount = covered
	}

	now := env.Now()
	expense := model.Expense{
		ID:          env.NewID(),
		Type:        req.Type,
		Description: strings.TrimSpace(req.Description),
		Amount:      amount,
		Date:        req.Date,
		MonthKey:    calc.MonthKey(req.Date),
		RoomID:      dto.OptionalString(req.RoomID),
		BookingID:   dto.OptionalString(req.BookingID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if len(roomCosts) > 0 {
		expense.SelectedRoomCosts = roomCosts
	}

	if len(hotelCosts) > 0 {
		expense.SelectedHotelCosts = hotelCosts
	}

	if expense.BookingID != nil {
		index := indexByID(state.Bookings, *expense.BookingID, bookingID)
		if index < 0 {
			return state, model.Expense{}, notFound("booking", *expense.BookingID)
		}

		input := calc.InputFromBooking(state.Bookings[index])
		input.SelectedRoomCosts = append(slices.Clone(input.SelectedRoomCosts), roomCosts...)
		input.SelectedHotelCosts = append(slices.Clone(input.SelectedHotelCosts), hotelCosts...)
		input.ExtraExpenses = calc.Round2(input.ExtraExpenses + max(amount-covered, 0))

		if expense.RoomID == nil {
			room := input.RoomID
			expense.RoomID = &room
		}

		state.Bookings = replacedAt(state.Bookings, index, calc.NormalizeAndComputeBooking(input, now))
	}

	state.Expenses = appended(state.Expenses, expense)

	return state, expense, nil
}

// UpdateExpense edits the expense record only; amounts already folded into a
// booking stay there.
func UpdateExpense(state model.AppState, id string, req dto.UpdateExpenseRequest, env Env) (model.AppState, model.Expense, error) {
	index := indexByID(state.Expenses, id, expenseID)
	if index < 0 {
		return state, model.Expense{}, notFound("expense", id)
	}

	expense := state.Expenses[index]

	if req.Date != nil {
		if _, err := calc.ParseDate(*req.Date); err != nil {
			return state, model.Expense{}, invalid("expense date %q", *req.Date)
		}

		expense.Date = *req.Date
		expense.MonthKey = calc.MonthKey(*req.Date)
	}

	if req.Description != nil {
		expense.Description = strings.TrimSpace(*req.Description)
	}

	expense.Type = deref(req.Type, expense.Type)
	expense.Amount = deref(req.Amount, expense.Amount)
	expense.UpdatedAt = env.Now()

	state.Expenses = replacedAt(state.Expenses, index, expense)

	return state, expense, nil
}

func DeleteExpense(state model.AppState, id string) (model.AppState, error) {
	index := indexByID(state.Expenses, id, expenseID)
	if index < 0 {
		return state, notFound("expense", id)
	}

	state.Expenses = removedAt(state.Expenses, index)

	return state, nil
}

// Hotel costs

// AddHotelCost buckets the cost into the period of monthKey (the month the
// user is looking at) for its frequency.
func AddHotelCost(state model.AppState, req dto.CreateHotelCostRequest, monthKey string, env Env) (model.AppState, model.HotelCost, error) {
	if !req.Category.Valid() {
		return state, model.HotelCost{}, invalid("hotel cost category %q", req.Category)
	}

	frequency := deref(req.FrequencyType, model.FrequencyMonthly)

	cost := model.HotelCost{
		ID:            env.NewID(),
		Label:         strings.TrimSpace(req.Label),
		Amount:        req.Amount,
		Category:      req.Category,
		IsActive:      true,
		FrequencyType: frequency,
		PeriodKey:     calc.PeriodKey(frequency, monthKey),
		CreatedAt:     env.Now(),
	}

	state.HotelCosts = appended(state.HotelCosts, cost)

	return state, cost, nil
}

// UpdateHotelCost re-buckets the cost when its frequency changes, keeping the
// month its current period started in.
func UpdateHotelCost(state model.AppState, id string, req dto.UpdateHotelCostRequest, monthKey string, env Env) (model.AppState, model.HotelCost, error) {
	index := indexByID(state.HotelCosts, id, hotelCostID)
	if index < 0 {
		return state, model.HotelCost{}, notFound("hotel cost", id)
	}

	cost := state.HotelCosts[index]

	if req.Label != nil {
		cost.Label = strings.TrimSpace(*req.Label)
	}

	cost.Amount = deref(req.Amount, cost.Amount)
	cost.Category = deref(req.Category, cost.Category)

	if req.FrequencyType != nil && *req.FrequencyType != cost.FrequencyType {
		cost.FrequencyType = *req.FrequencyType
		cost.PeriodKey = calc.PeriodKey(cost.FrequencyType, monthKey)
	}

	updatedAt := env.Now()
	cost.UpdatedAt = &updatedAt

	state.HotelCosts = replacedAt(state.HotelCosts, index, cost)

	return state, cost, nil
}

func ToggleHotelCostActive(state model.AppState, id string, env Env) (model.AppState, model.HotelCost, error) {
	index := indexByID(state.HotelCosts, id, hotelCostID)
	if index < 0 {
		return state, model.HotelCost{}, notFound("hotel cost", id)
	}

	cost := state.HotelCosts[index]
	cost.IsActive = !cost.IsActive
	updatedAt := env.Now()
	cost.UpdatedAt = &updatedAt

	state.HotelCosts = replacedAt(state.HotelCosts, index, cost)

	return state, cost, nil
}

func DeleteHotelCost(state model.AppState, id string) (model.AppState, error) {
	index := indexByID(state.HotelCosts, id, hotelCostID)
	if index < 0 {
		return state, notFound("hotel cost", id)
	}

	state.HotelCosts = removedAt(state.HotelCosts, index)

	return state, nil
}

// Cost catalog

func catalogItem(req dto.CreateCostCatalogItemRequest, env Env) (model.CostCatalogItem, error) {
	if !req.Type.Valid() {
		return model.CostCatalogItem{}, invalid("cost type %q", req.Type)
	}

	label := strings.TrimSpace(req.Label)
	if label == "" {
		return model.CostCatalogItem{}, invalid("cost label is required")
	}

	return model.CostCatalogItem{
		ID:         env.NewID(),
		Type:       req.Type,
		Category:   req.Category,
		Label:      label,
		UnitCost:   req.UnitCost,
		DefaultQty: req.DefaultQty,
		IsActive:   deref(req.IsActive, true),
	}, nil
}

func AddCostCatalogItem(state model.AppState, req dto.CreateCostCatalogItemRequest, env Env) (model.AppState, model.CostCatalogItem, error) {
	item, err := catalogItem(req, env)
	if err != nil {
		return state, model.CostCatalogItem{}, err
	}

	state.CostCatalog = appended(state.CostCatalog, item)

	return state, item, nil
}

// AddRoomCost adds a catalog item that belongs to a single room.
func AddRoomCost(state model.AppState, roomID string, req dto.CreateCostCatalogItemRequest, env Env) (model.AppState, model.CostCatalogItem, error) {
	if _, ok := state.RoomByID(roomID); !ok {
		return state, model.CostCatalogItem{}, notFound("room", roomID)
	}

	item, err := catalogItem(req, env)
	if err != nil {
		return state, model.CostCatalogItem{}, err
	}

	item.RoomID = &roomID
	state.CostCatalog = appended(state.CostCatalog, item)

	return state, item, nil
}

func UpdateCostCatalogItem(state model.AppState, id string, req dto.UpdateCostCatalogItemRequest) (model.AppState, model.CostCatalogItem, error) {
	index := indexByID(state.CostCatalog, id, catalogID)
	if index < 0 {
		return state, model.CostCatalogItem{}, notFound("cost catalog item", id)
	}

	item := state.CostCatalog[index]

	if req.Label != nil {
		item.Label = strings.TrimSpace(*req.Label)
	}

	item.UnitCost = deref(req.UnitCost, item.UnitCost)
	item.DefaultQty = deref(req.DefaultQty, item.DefaultQty)
	item.IsActive = deref(req.IsActive, item.IsActive)

	state.CostCatalog = replacedAt(state.CostCatalog, index, item)

	return state, item, nil
}

func DeleteCostCatalogItem(state model.AppState, id string) (model.AppState, error) {
	index := indexByID(state.CostCatalog, id, catalogID)
	if index < 0 {
		return state, notFound("cost catalog item", id)
	}

	state.CostCatalog = removedAt(state.CostCatalog, index)

	return state, nil
}

// SeedDefaultCatalog installs the starter room costs into an empty catalog.
// It reports whether anything changed.
func SeedDefaultCatalog(state model.AppState) (model.AppState, bool) {
	if len(state.CostCatalog) > 0 {
		return state, false
	}

	state.CostCatalog = calc.DefaultRoomCosts()

	return state, true
}

// Partners

func AddPartner(state model.AppState, req dto.CreatePartnerRequest, env Env) (model.AppState, model.Partner, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return state, model.Partner{}, invalid("partner name is required")
	}

	if !req.CommissionType.Valid() {
		return state, model.Partner{}, invalid("commission type %q", req.CommissionType)
	}

	partner := model.Partner{
		ID:                env.NewID(),
		Name:              name,
		Type:              req.Type,
		Phone:             strings.TrimSpace(req.Phone),
		Email:             strings.TrimSpace(req.Email),
		CommissionType:    req.CommissionType,
		CommissionValue:   req.CommissionValue,
		DiscountForGuests: req.DiscountForGuests,
		Location:          dto.OptionalString(req.Location),
		Notes:             dto.OptionalString(req.Notes),
		IsActive:          deref(req.IsActive, true),
		CreatedAt:         env.Now(),
	}

	state.Partners = appended(state.Partners, partner)

	return state, partner, nil
}

func UpdatePartner(state model.AppState, id string, req dto.UpdatePartnerRequest, env Env) (model.AppState, model.Partner, error) {
	index := indexByID(state.Partners, id, partnerID)
	if index < 0 {
		return state, model.Partner{}, notFound("partner", id)
	}

	partner := state.Partners[index]

	if req.Name != nil {
		partner.Name = strings.TrimSpace(*req.Name)
	}

	if req.Phone != nil {
		partner.Phone = strings.TrimSpace(*req.Phone)
	}

	if req.Email != nil {
		partner.Email = strings.TrimSpace(*req.Email)
	}

	if req.Location != nil {
		partner.Location = dto.OptionalString(req.Location)
	}

	if req.Notes != nil {
		partner.Notes = dto.OptionalString(req.Notes)
	}

	if req.DiscountForGuests != nil {
		partner.DiscountForGuests = req.DiscountForGuests
	}

	partner.Type = deref(req.Type, partner.Type)
	partner.CommissionType = deref(req.CommissionType, partner.CommissionType)
	partner.CommissionValue = deref(req.CommissionValue, partner.CommissionValue)

	updatedAt := env.Now()
	partner.UpdatedAt = &updatedAt

	state.Partners = replacedAt(state.Partners, index, partner)

	return state, partner, nil
}

func TogglePartnerActive(state model.AppState, id string, env Env) (model.AppState, model.Partner, error) {
	index := indexByID(state.Partners, id, partnerID)
	if index < 0 {
		return state, model.Partner{}, notFound("partner", id)
	}

	partner := state.Partners[index]
	partner.IsActive = !partner.IsActive
	updatedAt := env.Now()
	partner.UpdatedAt = &updatedAt

	state.Partners = replacedAt(state.Partners, index, partner)

	return state, partner, nil
}

// DeletePartner keeps past referrals; their commissions were earned.
func DeletePartner(state model.AppState, id string) (model.AppState, error) {
	index := indexByID(state.Partners, id, partnerID)
	if index < 0 {
		return state, notFound("partner", id)
	}

	state.Partners = removedAt(state.Partners, index)

	return state, nil
}

// Manual referrals

// AddManualReferral prices the referral at the partner's current rate.
func AddManualReferral(state model.AppState, req dto.CreateManualReferralRequest, env Env) (model.AppState, model.ManualReferral, error) {
	partner, ok := state.PartnerByID(req.PartnerID)
	if !ok {
		return state, model.ManualReferral{}, notFound("partner", req.PartnerID)
	}

	if _, err := calc.ParseDate(req.Date); err != nil {
		return state, model.ManualReferral{}, invalid("referral date %q", req.Date)
	}

	referral := model.ManualReferral{
		ID:               env.NewID(),
		PartnerID:        partner.ID,
		GuestsCount:      req.GuestsCount,
		Date:             req.Date,
		Notes:            dto.OptionalString(req.Notes),
		CommissionEarned: calc.Commission(partner, req.GuestsCount, req.OrderAmount),
		MonthKey:         calc.MonthKey(req.Date),
		CreatedAt:        env.Now(),
	}

	state.ManualReferrals = appended(state.ManualReferrals, referral)

	return state, referral, nil
}

// UpdateManualReferral reprices at the partner's current rate. Without a new
// order amount a percentage referral keeps its per-guest commission.
func UpdateManualReferral(state model.AppState, id string, req dto.UpdateManualReferralRequest) (model.AppState, model.ManualReferral, error) {
	index := indexByID(state.ManualReferrals, id, referralID)
	if index < 0 {
		return state, model.ManualReferral{}, notFound("manual referral", id)
	}

	referral := state.ManualReferrals[index]

	partner, ok := state.PartnerByID(referral.PartnerID)
	if !ok {
		return state, model.ManualReferral{}, notFound("partner", referral.PartnerID)
	}

	if req.Date != nil {
		if _, err := calc.ParseDate(*req.Date); err != nil {
			return state, model.ManualReferral{}, invalid("referral date %q", *req.Date)
		}

		referral.Date = *req.Date
		referral.MonthKey = calc.MonthKey(*req.Date)
	}

	if req.Notes != nil {
		referral.Notes = dto.OptionalString(req.Notes)
	}

	previousGuests := referral.GuestsCount
	referral.GuestsCount = deref(req.GuestsCount, referral.GuestsCount)

	switch {
	case req.OrderAmount != nil || partner.CommissionType == model.CommissionFixed:
		referral.CommissionEarned = calc.Commission(partner, referral.GuestsCount, deref(req.OrderAmount, 0))
	case previousGuests > 0:
		perGuest := referral.CommissionEarned / float64(previousGuests)
		referral.CommissionEarned = calc.Round2(perGuest * float64(referral.GuestsCount))
	}

	state.ManualReferrals = replacedAt(state.ManualReferrals, index, referral)

	return state, referral, nil
}

func DeleteManualReferral(state model.AppState, id string) (model.AppState, error) {
	index := indexByID(state.ManualReferrals, id, referralID)
	if index < 0 {
		return state, notFound("manual referral", id)
	}

	state.ManualReferrals = removedAt(state.ManualReferrals, index)

	return state, nil
}
