package service_test

import (
	"context"
	"errors"
	"reziro/config"
	otelMocks "reziro/infras/otel/mocks"
	"reziro/internal/domains/hotel/mocks"
	"reziro/internal/domains/hotel/model"
	"reziro/internal/domains/hotel/model/dto"
	"reziro/internal/domains/hotel/service"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "reziro"
	cfg.Sync.DebounceMillis = 300
	cfg.Sync.SaveTimeoutSeconds = 5
	cfg.Sync.SessionIdleMinutes = 30
	cfg.Sync.SuppressSchemaErrors = true

	return cfg
}

// openStore returns a hydrated store over loaded. SaveState calls are
// allowed any number of times unless the test sets its own expectation first.
func openStore(t *testing.T, adapter *mocks.MockAdapter, loaded model.AppState, clock *testClock) *service.Store {
	t.Helper()

	adapter.EXPECT().LoadState(gomock.Any()).Return(loaded, nil)

	store := service.NewStore(testConfig(), adapter, otelMocks.NewOtel(), "u-1", clock.env())
	store.Open(context.Background())

	return store
}

func TestStore_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the default catalog into an empty account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adapter := mocks.NewMockAdapter(ctrl)

		cfg := testConfig()
		cfg.Sync.SeedDefaultCatalog = true

		adapter.EXPECT().LoadState(gomock.Any()).Return(model.EmptyState(), nil)
		adapter.EXPECT().SaveState(gomock.Any()).Do(func(state model.AppState) {
			assert.Len(t, state.CostCatalog, 12)
		})

		store := service.NewStore(cfg, adapter, otelMocks.NewOtel(), "u-1", newClock().env())
		store.Open(ctx)
		store.Open(ctx)

		assert.True(t, store.UI().IsHydrated)
		assert.Equal(t, "2024-03", store.UI().SelectedMonthKey)
		assert.Len(t, store.State().CostCatalog, 12)
	})

	t.Run("a failed load starts empty and seeds nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adapter := mocks.NewMockAdapter(ctrl)

		cfg := testConfig()
		cfg.Sync.SeedDefaultCatalog = true

		adapter.EXPECT().LoadState(gomock.Any()).Return(model.EmptyState(), errors.New("connection refused"))

		tracer := otelMocks.NewOtel()
		store := service.NewStore(cfg, adapter, tracer, "u-1", newClock().env())
		store.Open(ctx)

		assert.True(t, store.UI().IsHydrated)
		assert.Equal(t, model.EmptyState(), store.State())
		assert.Len(t, tracer.Errors(), 1)
	})
}

func TestStore_CreateBooking(t *testing.T) {
	ctx := context.Background()
	clock := newClock()

	loaded, room := stateWithRoom(t, clock)
	loaded, _, err := service.ToggleMonthLock(loaded, "2024-03", clock.env())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	store := openStore(t, adapter, loaded, clock)

	adapter.EXPECT().SaveState(gomock.Any()).Times(1)

	booking, ok := store.CreateBooking(ctx, dto.CreateBookingRequest{
		RoomID: room.ID, StartDate: "2024-02-10", EndDate: "2024-02-12", PricePerNight: 100,
	})
	require.True(t, ok)
	assert.Equal(t, 200.0, booking.Income)

	_, ok = store.CreateBooking(ctx, dto.CreateBookingRequest{
		RoomID: room.ID, StartDate: "2024-03-05", EndDate: "2024-03-07", PricePerNight: 100,
	})
	assert.False(t, ok)

	_, err = store.TryCreateBooking(ctx, dto.CreateBookingRequest{
		RoomID: room.ID, StartDate: "2024-02-11", EndDate: "2024-02-13", PricePerNight: 100,
	})
	assert.ErrorIs(t, err, service.ErrBookingConflict)
	assert.ErrorIs(t, store.BookingRejection(room.ID, "2024-02-11", "2024-02-13", ""), service.ErrBookingConflict)
	assert.Len(t, store.Conflicts(room.ID, "2024-02-11", "2024-02-13", ""), 1)

	assert.Len(t, store.State().Bookings, 1)
}

func TestStore_UpdateBookingWritesImmediately(t *testing.T) {
	ctx := context.Background()
	clock := newClock()

	loaded, room := stateWithRoom(t, clock)
	loaded, booking := book(t, loaded, room.ID, "2024-01-10", "2024-01-13", clock)

	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	store := openStore(t, adapter, loaded, clock)

	adapter.EXPECT().SaveState(gomock.Any())
	adapter.EXPECT().UpdateBookingNow(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated model.Booking) (*model.Booking, error) {
			assert.Equal(t, 1200.0, updated.Income)

			return &updated, nil
		})
	adapter.EXPECT().Close(gomock.Any()).Return(nil)

	updated, ok := store.UpdateBooking(ctx, booking.ID, dto.UpdateBookingRequest{PricePerNight: ptr(400.0)})
	require.True(t, ok)
	assert.Equal(t, 1200.0, updated.Income)

	_, ok = store.UpdateBooking(ctx, "missing", dto.UpdateBookingRequest{})
	assert.False(t, ok)

	require.NoError(t, store.Close(ctx))
}

func TestStore_NoImmediateWriteAfterClose(t *testing.T) {
	ctx := context.Background()
	clock := newClock()

	loaded, room := stateWithRoom(t, clock)
	loaded, booking := book(t, loaded, room.ID, "2024-01-10", "2024-01-13", clock)

	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	store := openStore(t, adapter, loaded, clock)

	adapter.EXPECT().SaveState(gomock.Any())
	adapter.EXPECT().Close(gomock.Any()).Return(nil)

	require.NoError(t, store.Close(ctx))

	updated, ok := store.UpdateBooking(ctx, booking.ID, dto.UpdateBookingRequest{PricePerNight: ptr(400.0)})
	require.True(t, ok)
	assert.Equal(t, 1200.0, updated.Income)
}

func TestStore_CloseWhileWriting(t *testing.T) {
	ctx := context.Background()
	clock := newClock()

	loaded, room := stateWithRoom(t, clock)
	loaded, booking := book(t, loaded, room.ID, "2024-01-10", "2024-01-13", clock)

	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	store := openStore(t, adapter, loaded, clock)

	var (
		writes  atomic.Int32
		closing atomic.Bool
	)

	adapter.EXPECT().SaveState(gomock.Any()).AnyTimes()
	adapter.EXPECT().UpdateBookingNow(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated model.Booking) (*model.Booking, error) {
			writes.Add(1)

			return &updated, nil
		}).AnyTimes()
	adapter.EXPECT().Close(gomock.Any()).DoAndReturn(func(context.Context) error {
		closing.Store(true)

		return nil
	})

	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, ok := store.UpdateBooking(ctx, booking.ID, dto.UpdateBookingRequest{PricePerNight: ptr(float64(300 + i))})
			assert.True(t, ok)
		}()
	}

	require.NoError(t, store.Close(ctx))

	started := writes.Load()

	wg.Wait()

	assert.True(t, closing.Load())
	assert.Equal(t, started, writes.Load())
}

func TestStore_DeleteRoomCascades(t *testing.T) {
	ctx := context.Background()
	clock := newClock()

	loaded, room := stateWithRoom(t, clock)
	loaded, _ = book(t, loaded, room.ID, "2024-01-10", "2024-01-12", clock)
	loaded, _ = book(t, loaded, room.ID, "2024-01-20", "2024-01-22", clock)

	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	store := openStore(t, adapter, loaded, clock)

	adapter.EXPECT().SaveState(gomock.Any()).Do(func(state model.AppState) {
		assert.Empty(t, state.Rooms)
		assert.Empty(t, state.Bookings)
	})

	require.NoError(t, store.DeleteRoom(ctx, room.ID))
	assert.ErrorIs(t, store.DeleteRoom(ctx, room.ID), service.ErrNotFound)
}

func TestStore_PartnerWrites(t *testing.T) {
	ctx := context.Background()
	clock := newClock()

	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	store := openStore(t, adapter, model.EmptyState(), clock)

	adapter.EXPECT().SaveState(gomock.Any()).Times(3)
	adapter.EXPECT().SavePartnersNow(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	adapter.EXPECT().DeletePartnerNow(gomock.Any(), "id-1").Return(errors.New("timeout"))
	adapter.EXPECT().Close(gomock.Any()).Return(nil)

	partner, err := store.AddPartner(ctx, dto.CreatePartnerRequest{
		Name: "Blue Spa", Type: model.PartnerTypeSpa, CommissionType: model.CommissionFixed, CommissionValue: 10,
	})
	require.NoError(t, err)

	_, err = store.TogglePartnerActive(ctx, partner.ID)
	require.NoError(t, err)

	require.NoError(t, store.DeletePartner(ctx, partner.ID))
	require.NoError(t, store.Close(ctx))

	assert.Empty(t, store.State().Partners)
}

func TestStore_ReferralAndExpenseWrites(t *testing.T) {
	ctx := context.Background()
	clock := newClock()

	loaded, _, err := service.AddPartner(model.EmptyState(), dto.CreatePartnerRequest{
		Name: "Jeep Tours", Type: model.PartnerTypeTour, CommissionType: model.CommissionFixed, CommissionValue: 25,
	}, clock.env())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	store := openStore(t, adapter, loaded, clock)

	adapter.EXPECT().SaveState(gomock.Any()).Times(4)
	adapter.EXPECT().SaveManualReferralsNow(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	adapter.EXPECT().DeleteManualReferralNow(gomock.Any(), gomock.Any()).Return(nil)
	adapter.EXPECT().DeleteExpenseNow(gomock.Any(), gomock.Any()).Return(nil)
	adapter.EXPECT().Close(gomock.Any()).Return(nil)

	referral, err := store.AddManualReferral(ctx, dto.CreateManualReferralRequest{
		PartnerID: loaded.Partners[0].ID, GuestsCount: 2, Date: "2024-03-04",
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, referral.CommissionEarned)

	_, err = store.AddManualReferral(ctx, dto.CreateManualReferralRequest{PartnerID: "gone", GuestsCount: 1, Date: "2024-03-04"})
	assert.ErrorIs(t, err, service.ErrNotFound)

	stats, err := store.PartnerStats(loaded.Partners[0].ID, false)
	require.NoError(t, err)
	assert.Equal(t, model.PartnerStats{PartnerID: loaded.Partners[0].ID, TotalRevenue: 50, TotalReferrals: 1, TotalGuests: 2}, stats)
	assert.Len(t, store.AllPartnerStats(true), 1)

	require.NoError(t, store.DeleteManualReferral(ctx, referral.ID))

	expense, err := store.AddExpense(ctx, dto.CreateExpenseRequest{
		Type: model.ExpenseTypeCustom, Description: "Paint", Amount: 300, Date: "2024-03-10",
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteExpense(ctx, expense.ID))
	require.NoError(t, store.Close(ctx))
}

func TestStore_AddRoomCostWritesImmediately(t *testing.T) {
	ctx := context.Background()
	clock := newClock()

	loaded, room := stateWithRoom(t, clock)

	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	store := openStore(t, adapter, loaded, clock)

	adapter.EXPECT().SaveState(gomock.Any())
	adapter.EXPECT().AddRoomCostNow(gomock.Any(), gomock.Any(), room.ID).Return(nil)
	adapter.EXPECT().Close(gomock.Any()).Return(nil)

	item, err := store.AddRoomCost(ctx, room.ID, dto.CreateCostCatalogItemRequest{
		Type: model.CostTypeRoom, Label: "Minibar", UnitCost: 12, DefaultQty: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, ptr(room.ID), item.RoomID)

	require.NoError(t, store.Close(ctx))
}

func TestStore_SelectedMonth(t *testing.T) {
	ctx := context.Background()
	clock := newClock()

	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	store := openStore(t, adapter, model.EmptyState(), clock)

	adapter.EXPECT().SaveState(gomock.Any()).AnyTimes()

	assert.ErrorIs(t, store.SetSelectedMonth("2024-13", nil), service.ErrInvalidInput)
	require.NoError(t, store.SetSelectedMonth("2024-08", ptr("r-1")))

	assert.Equal(t, "2024-08", store.UI().SelectedMonthKey)
	assert.Equal(t, ptr("r-1"), store.UI().SelectedRoomID)

	cost, err := store.AddHotelCost(ctx, dto.CreateHotelCostRequest{
		Label: "Arnona", Amount: 3000, Category: model.HotelCostArnona, FrequencyType: ptr(model.FrequencyQuarterly),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-Q3", cost.PeriodKey)

	summary, err := store.MonthSummary("")
	require.NoError(t, err)
	assert.Equal(t, "2024-08", summary.MonthKey)
	assert.Equal(t, 3000.0, summary.RecurringHotelCosts)

	_, err = store.MonthSummary("bad")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestStore_MonthLockAndFlush(t *testing.T) {
	ctx := context.Background()
	clock := newClock()

	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	store := openStore(t, adapter, model.EmptyState(), clock)

	adapter.EXPECT().SaveState(gomock.Any()).Times(2)
	adapter.EXPECT().Pending().Return(true)
	adapter.EXPECT().Flush(gomock.Any()).Return(nil)

	lock, err := store.ToggleMonthLock(ctx, "2024-03")
	require.NoError(t, err)
	assert.True(t, lock.IsLocked)
	assert.True(t, store.IsMonthLocked("2024-03"))

	_, err = store.ToggleMonthLock(ctx, "2024-03")
	require.NoError(t, err)
	assert.False(t, store.IsMonthLocked("2024-03"))

	assert.True(t, store.PendingSave())
	require.NoError(t, store.Flush(ctx))
}
