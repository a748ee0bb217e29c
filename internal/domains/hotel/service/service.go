package service

import (
	"context"
	"reziro/config"
	"reziro/infras/otel"
	"reziro/internal/domains/hotel/calc"
	"reziro/internal/domains/hotel/conflict"
	"reziro/internal/domains/hotel/model"
	"reziro/internal/domains/hotel/model/dto"
	"reziro/internal/domains/hotel/repository"
	"reziro/shared/constant"
	"reziro/shared/logger"
	"reziro/shared/timezone"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const spanPrefix = constant.OtelServiceScopeName + ".hotel."

// Store is the state container of one signed-in account. Every mutator runs
// a pure transition against the current snapshot, swaps in the result and
// schedules a debounced save; a rejected transition changes nothing.
type Store struct {
	cfg     *config.Config
	adapter repository.Adapter
	otel    otel.Otel
	env     Env
	userID  string
	log     zerolog.Logger

	mu     sync.RWMutex
	state  model.AppState
	ui     model.UIState
	closed bool

	openOnce   sync.Once
	background sync.WaitGroup
	lastUsed   atomic.Int64
}

func NewStore(cfg *config.Config, adapter repository.Adapter, otl otel.Otel, userID string, env Env) *Store {
	store := &Store{
		cfg:     cfg,
		adapter: adapter,
		otel:    otl,
		env:     env,
		userID:  userID,
		log:     logger.ForAccount(userID),
		state:   model.EmptyState(),
		ui:      model.UIState{SelectedMonthKey: calc.CurrentMonthKey(timezone.ToAppTime(env.Now()))},
	}

	store.touch()

	return store
}

// Open hydrates the store once. A failed load leaves the empty state in
// place; the session still works and the adapter will not sync-delete.
func (s *Store) Open(ctx context.Context) {
	s.openOnce.Do(func() {
		ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, spanPrefix+"Open")
		defer scope.End()

		state, err := s.adapter.LoadState(ctx)
		if err != nil {
			scope.TraceError(err)
			s.log.Error().Err(err).Msg("failed to hydrate state, starting empty")
		}

		seeded := false
		if err == nil && s.cfg.Sync.SeedDefaultCatalog {
			state, seeded = SeedDefaultCatalog(state)
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		s.state = state.Defaulted()
		s.ui.IsHydrated = true

		if seeded {
			s.log.Info().Int("items", len(s.state.CostCatalog)).Msg("seeded default cost catalog")
			s.adapter.SaveState(s.state)
		}
	})
}

// Close waits for immediate writes still in flight, then flushes the
// pending debounced save. No immediate write starts once Close has begun.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.background.Wait()

	return s.adapter.Close(ctx)
}

func (s *Store) UserID() string {
	return s.userID
}

func (s *Store) touch() {
	s.lastUsed.Store(s.env.Now().UnixNano())
}

func (s *Store) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastUsed.Load()))
}

func (s *Store) State() model.AppState {
	s.touch()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *Store) UI() model.UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ui
}

func (s *Store) SetSelectedMonth(monthKey string, roomID *string) error {
	if !calc.ValidMonthKey(monthKey) {
		return invalid("month key %q", monthKey)
	}

	s.touch()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ui.SelectedMonthKey = monthKey
	s.ui.SelectedRoomID = dto.OptionalString(roomID)

	return nil
}

func (s *Store) selectedMonth() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ui.SelectedMonthKey
}

// mutate is the single write path. The debounced save is scheduled under the
// lock so saves are queued in the order the snapshots were produced.
func (s *Store) mutate(ctx context.Context, op string, transition func(model.AppState) (model.AppState, error)) (model.AppState, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, spanPrefix+op)
	defer scope.End()

	s.touch()

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := transition(s.state)
	if err != nil {
		scope.TraceError(err)
		s.log.Debug().Err(err).Str("op", op).Msg("transition rejected")

		return s.state, err
	}

	s.state = next
	s.adapter.SaveState(next)

	return next, nil
}

// immediately runs a narrow remote write next to the debounced save. Its
// failure is logged only; the next full save carries the same data.
func (s *Store) immediately(ctx context.Context, op string, write func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.log.Warn().Str("op", op).Msg("session closed, skipping immediate write")

		return
	}

	s.background.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.background.Done()

		ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Sync.SaveTimeoutSeconds)*time.Second)
		defer cancel()

		if err := write(ctx); err != nil {
			s.log.Error().Err(err).Str("op", op).Msg("immediate write failed, relying on debounced save")
		}
	}()
}

// Rooms

func (s *Store) AddRoom(ctx context.Context, req dto.CreateRoomRequest) (room model.Room, err error) {
	_, err = s.mutate(ctx, "AddRoom", func(state model.AppState) (model.AppState, error) {
		state, room, err = AddRoom(state, req, s.env)

		return state, err
	})

	return room, err
}

func (s *Store) UpdateRoom(ctx context.Context, id string, req dto.UpdateRoomRequest) (room model.Room, err error) {
	_, err = s.mutate(ctx, "UpdateRoom", func(state model.AppState) (model.AppState, error) {
		state, room, err = UpdateRoom(state, id, req)

		return state, err
	})

	return room, err
}

func (s *Store) DeleteRoom(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, "DeleteRoom", func(state model.AppState) (model.AppState, error) {
		return DeleteRoom(state, id)
	})

	return err
}

// Bookings

// TryCreateBooking returns the booking, or the reason it was refused:
// ErrMonthLocked, ErrBookingConflict, ErrNotFound or ErrInvalidInput.
func (s *Store) TryCreateBooking(ctx context.Context, req dto.CreateBookingRequest) (booking model.Booking, err error) {
	_, err = s.mutate(ctx, "CreateBooking", func(state model.AppState) (model.AppState, error) {
		state, booking, err = CreateBooking(state, req, s.env)

		return state, err
	})

	return booking, err
}

// CreateBooking reports false when the month is locked or the room is taken.
func (s *Store) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, bool) {
	booking, err := s.TryCreateBooking(ctx, req)

	return booking, err == nil
}

// TryUpdateBooking applies the patch and also writes the booking row right
// away, ahead of the debounced save.
func (s *Store) TryUpdateBooking(ctx context.Context, id string, req dto.UpdateBookingRequest) (booking model.Booking, err error) {
	_, err = s.mutate(ctx, "UpdateBooking", func(state model.AppState) (model.AppState, error) {
		state, booking, err = UpdateBooking(state, id, req, s.env)

		return state, err
	})
	if err != nil {
		return booking, err
	}

	updated := booking
	s.immediately(ctx, "UpdateBookingNow", func(ctx context.Context) error {
		_, err := s.adapter.UpdateBookingNow(ctx, updated)

		return err
	})

	return booking, nil
}

func (s *Store) UpdateBooking(ctx context.Context, id string, req dto.UpdateBookingRequest) (model.Booking, bool) {
	booking, err := s.TryUpdateBooking(ctx, id, req)

	return booking, err == nil
}

func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, "DeleteBooking", func(state model.AppState) (model.AppState, error) {
		return DeleteBooking(state, id)
	})

	return err
}

func (s *Store) HasConflict(roomID, startDate, endDate, excludeID string) bool {
	return HasConflict(s.State(), roomID, startDate, endDate, excludeID)
}

// Conflicts lists the bookings a candidate range collides with, for display.
func (s *Store) Conflicts(roomID, startDate, endDate, excludeID string) []model.Booking {
	return conflict.Conflicts(s.State().Bookings, roomID, startDate, endDate, excludeID)
}

func (s *Store) BookingRejection(roomID, startDate, endDate, excludeID string) error {
	return BookingRejection(s.State(), roomID, startDate, endDate, excludeID)
}

// Month locks

func (s *Store) ToggleMonthLock(ctx context.Context, monthKey string) (lock model.MonthLock, err error) {
	_, err = s.mutate(ctx, "ToggleMonthLock", func(state model.AppState) (model.AppState, error) {
		state, lock, err = ToggleMonthLock(state, monthKey, s.env)

		return state, err
	})

	return lock, err
}

func (s *Store) IsMonthLocked(monthKey string) bool {
	return s.State().IsMonthLocked(monthKey)
}

// Forecasts

func (s *Store) AddForecast(ctx context.Context, req dto.CreateForecastRequest) (forecast model.Forecast, err error) {
	_, err = s.mutate(ctx, "AddForecast", func(state model.AppState) (model.AppState, error) {
		state, forecast, err = AddForecast(state, req, s.env)

		return state, err
	})

	return forecast, err
}

func (s *Store) UpdateForecast(ctx context.Context, id string, req dto.UpdateForecastRequest) (forecast model.Forecast, err error) {
	_, err = s.mutate(ctx, "UpdateForecast", func(state model.AppState) (model.AppState, error) {
		state, forecast, err = UpdateForecast(state, id, req)

		return state, err
	})

	return forecast, err
}

func (s *Store) DeleteForecast(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, "DeleteForecast", func(state model.AppState) (model.AppState, error) {
		return DeleteForecast(state, id)
	})

	return err
}

// Expenses

func (s *Store) AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (expense model.Expense, err error) {
	_, err = s.mutate(ctx, "AddExpense", func(state model.AppState) (model.AppState, error) {
		state, expense, err = AddExpense(state, req, s.env)

		return state, err
	})

	return expense, err
}

func (s *Store) UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (expense model.Expense, err error) {
	_, err = s.mutate(ctx, "UpdateExpense", func(state model.AppState) (model.AppState, error) {
		state, expense, err = UpdateExpense(state, id, req, s.env)

		return state, err
	})

	return expense, err
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, "DeleteExpense", func(state model.AppState) (model.AppState, error) {
		return DeleteExpense(state, id)
	})
	if err != nil {
		return err
	}

	s.immediately(ctx, "DeleteExpenseNow", func(ctx context.Context) error {
		return s.adapter.DeleteExpenseNow(ctx, id)
	})

	return nil
}

// Hotel costs

func (s *Store) AddHotelCost(ctx context.Context, req dto.CreateHotelCostRequest) (cost model.HotelCost, err error) {
	monthKey := s.selectedMonth()

	_, err = s.mutate(ctx, "AddHotelCost", func(state model.AppState) (model.AppState, error) {
		state, cost, err = AddHotelCost(state, req, monthKey, s.env)

		return state, err
	})

	return cost, err
}

func (s *Store) UpdateHotelCost(ctx context.Context, id string, req dto.UpdateHotelCostRequest) (cost model.HotelCost, err error) {
	monthKey := s.selectedMonth()

	_, err = s.mutate(ctx, "UpdateHotelCost", func(state model.AppState) (model.AppState, error) {
		state, cost, err = UpdateHotelCost(state, id, req, monthKey, s.env)

		return state, err
	})

	return cost, err
}

func (s *Store) ToggleHotelCostActive(ctx context.Context, id string) (cost model.HotelCost, err error) {
	_, err = s.mutate(ctx, "ToggleHotelCostActive", func(state model.AppState) (model.AppState, error) {
		state, cost, err = ToggleHotelCostActive(state, id, s.env)

		return state, err
	})

	return cost, err
}

func (s *Store) DeleteHotelCost(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, "DeleteHotelCost", func(state model.AppState) (model.AppState, error) {
		return DeleteHotelCost(state, id)
	})

	return err
}

// Cost catalog

func (s *Store) AddCostCatalogItem(ctx context.Context, req dto.CreateCostCatalogItemRequest) (item model.CostCatalogItem, err error) {
	_, err = s.mutate(ctx, "AddCostCatalogItem", func(state model.AppState) (model.AppState, error) {
		state, item, err = AddCostCatalogItem(state, req, s.env)

		return state, err
	})

	return item, err
}

func (s *Store) AddRoomCost(ctx context.Context, roomID string, req dto.CreateCostCatalogItemRequest) (item model.CostCatalogItem, err error) {
	_, err = s.mutate(ctx, "AddRoomCost", func(state model.AppState) (model.AppState, error) {
		state, item, err = AddRoomCost(state, roomID, req, s.env)

		return state, err
	})
	if err != nil {
		return item, err
	}

	added := item
	s.immediately(ctx, "AddRoomCostNow", func(ctx context.Context) error {
		return s.adapter.AddRoomCostNow(ctx, added, roomID)
	})

	return item, nil
}

func (s *Store) UpdateCostCatalogItem(ctx context.Context, id string, req dto.UpdateCostCatalogItemRequest) (item model.CostCatalogItem, err error) {
	_, err = s.mutate(ctx, "UpdateCostCatalogItem", func(state model.AppState) (model.AppState, error) {
		state, item, err = UpdateCostCatalogItem(state, id, req)

		return state, err
	})

	return item, err
}

func (s *Store) DeleteCostCatalogItem(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, "DeleteCostCatalogItem", func(state model.AppState) (model.AppState, error) {
		return DeleteCostCatalogItem(state, id)
	})

	return err
}

// Partners

func (s *Store) savePartners(ctx context.Context, state model.AppState) {
	s.immediately(ctx, "SavePartnersNow", func(ctx context.Context) error {
		return s.adapter.SavePartnersNow(ctx, state)
	})
}

func (s *Store) AddPartner(ctx context.Context, req dto.CreatePartnerRequest) (partner model.Partner, err error) {
	state, err := s.mutate(ctx, "AddPartner", func(state model.AppState) (model.AppState, error) {
		state, partner, err = AddPartner(state, req, s.env)

		return state, err
	})
	if err != nil {
		return partner, err
	}

	s.savePartners(ctx, state)

	return partner, nil
}

func (s *Store) UpdatePartner(ctx context.Context, id string, req dto.UpdatePartnerRequest) (partner model.Partner, err error) {
	state, err := s.mutate(ctx, "UpdatePartner", func(state model.AppState) (model.AppState, error) {
		state, partner, err = UpdatePartner(state, id, req, s.env)

		return state, err
	})
	if err != nil {
		return partner, err
	}

	s.savePartners(ctx, state)

	return partner, nil
}

func (s *Store) TogglePartnerActive(ctx context.Context, id string) (partner model.Partner, err error) {
	state, err := s.mutate(ctx, "TogglePartnerActive", func(state model.AppState) (model.AppState, error) {
		state, partner, err = TogglePartnerActive(state, id, s.env)

		return state, err
	})
	if err != nil {
		return partner, err
	}

	s.savePartners(ctx, state)

	return partner, nil
}

func (s *Store) DeletePartner(ctx context.Context, id string) error {
	state, err := s.mutate(ctx, "DeletePartner", func(state model.AppState) (model.AppState, error) {
		return DeletePartner(state, id)
	})
	if err != nil {
		return err
	}

	s.immediately(ctx, "DeletePartnerNow", func(ctx context.Context) error {
		if err := s.adapter.DeletePartnerNow(ctx, id); err != nil {
			return err
		}

		return s.adapter.SavePartnersNow(ctx, state)
	})

	return nil
}

// Manual referrals

func (s *Store) saveReferrals(ctx context.Context, state model.AppState) {
	s.immediately(ctx, "SaveManualReferralsNow", func(ctx context.Context) error {
		return s.adapter.SaveManualReferralsNow(ctx, state)
	})
}

func (s *Store) AddManualReferral(ctx context.Context, req dto.CreateManualReferralRequest) (referral model.ManualReferral, err error) {
	state, err := s.mutate(ctx, "AddManualReferral", func(state model.AppState) (model.AppState, error) {
		state, referral, err = AddManualReferral(state, req, s.env)

		return state, err
	})
	if err != nil {
		return referral, err
	}

	s.saveReferrals(ctx, state)

	return referral, nil
}

func (s *Store) UpdateManualReferral(ctx context.Context, id string, req dto.UpdateManualReferralRequest) (referral model.ManualReferral, err error) {
	state, err := s.mutate(ctx, "UpdateManualReferral", func(state model.AppState) (model.AppState, error) {
		state, referral, err = UpdateManualReferral(state, id, req)

		return state, err
	})
	if err != nil {
		return referral, err
	}

	s.saveReferrals(ctx, state)

	return referral, nil
}

func (s *Store) DeleteManualReferral(ctx context.Context, id string) error {
	state, err := s.mutate(ctx, "DeleteManualReferral", func(state model.AppState) (model.AppState, error) {
		return DeleteManualReferral(state, id)
	})
	if err != nil {
		return err
	}

	s.immediately(ctx, "DeleteManualReferralNow", func(ctx context.Context) error {
		if err := s.adapter.DeleteManualReferralNow(ctx, id); err != nil {
			return err
		}

		return s.adapter.SaveManualReferralsNow(ctx, state)
	})

	return nil
}

// Queries

// PartnerStats covers the selected month; AllTime ignores it.
func (s *Store) PartnerStats(partnerID string, allTime bool) (model.PartnerStats, error) {
	state := s.State()
	if _, ok := state.PartnerByID(partnerID); !ok {
		return model.PartnerStats{}, notFound("partner", partnerID)
	}

	monthKey := s.selectedMonth()
	if allTime {
		monthKey = ""
	}

	return calc.PartnerStats(state, partnerID, monthKey), nil
}

func (s *Store) AllPartnerStats(allTime bool) []model.PartnerStats {
	monthKey := s.selectedMonth()
	if allTime {
		monthKey = ""
	}

	return calc.AllPartnerStats(s.State(), monthKey)
}

// MonthSummary defaults to the selected month when monthKey is empty.
func (s *Store) MonthSummary(monthKey string) (model.MonthSummary, error) {
	if monthKey == "" {
		monthKey = s.selectedMonth()
	}

	if !calc.ValidMonthKey(monthKey) {
		return model.MonthSummary{}, invalid("month key %q", monthKey)
	}

	return calc.MonthSummary(s.State(), monthKey), nil
}

// Flush pushes the pending debounced save now.
func (s *Store) Flush(ctx context.Context) error {
	s.touch()

	return s.adapter.Flush(ctx)
}

func (s *Store) PendingSave() bool {
	return s.adapter.Pending()
}
