package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"reziro/config"
	"reziro/infras/otel"
	"reziro/internal/domains/hotel/model"
	"reziro/shared"
	"reziro/shared/cache"
	"reziro/shared/constant"
	"reziro/shared/dto"
	"reziro/shared/logger"
	gRepo "reziro/shared/repository"
	"reziro/shared/timezone"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const spanPrefix = constant.OtelRepositoryScopeName + ".hotel."

// Adapter persists one account's AppState. Full-state saves are debounced and
// best effort per table; the Now operations write a single entity right away.
type Adapter interface {
	LoadState(ctx context.Context) (model.AppState, error)
	SaveState(state model.AppState)
	SaveStateNow(ctx context.Context, state model.AppState) (SaveReport, error)
	Flush(ctx context.Context) error
	CancelPending() bool
	Pending() bool
	Close(ctx context.Context) error

	UpdateBookingNow(ctx context.Context, booking model.Booking) (*model.Booking, error)
	SavePartnersNow(ctx context.Context, state model.AppState) error
	DeletePartnerNow(ctx context.Context, partnerID string) error
	SaveManualReferralsNow(ctx context.Context, state model.AppState) error
	DeleteManualReferralNow(ctx context.Context, referralID string) error
	DeleteExpenseNow(ctx context.Context, expenseID string) error
	AddRoomCostNow(ctx context.Context, item model.CostCatalogItem, roomID string) error
}

type adapterImpl struct {
	cfg       *config.Config
	store     gRepo.TableStore
	cache     cache.RedisCache
	otel      otel.Otel
	userID    string
	cacheKey  string
	scheduler *Scheduler
	onReport  func(SaveReport)

	saveMu sync.Mutex
	mu     sync.RWMutex
	loaded bool
}

// New builds the adapter for userID. A nil store means no remote store is
// configured: loads return the empty state and writes do nothing. onReport,
// when set, receives the outcome of every full-state save.
func New(
	cfg *config.Config,
	store gRepo.TableStore,
	redisCache cache.RedisCache,
	otl otel.Otel,
	userID string,
	onReport func(SaveReport),
) Adapter {
	if redisCache == nil {
		redisCache = cache.NewNoopCache()
	}

	adapter := &adapterImpl{
		cfg:      cfg,
		store:    store,
		cache:    redisCache,
		otel:     otl,
		userID:   userID,
		cacheKey: shared.BuildCacheKey(cfg, "state", userID),
		onReport: onReport,
	}

	adapter.scheduler = NewScheduler(
		time.Duration(cfg.Sync.DebounceMillis)*time.Millisecond,
		time.Duration(cfg.Sync.SaveTimeoutSeconds)*time.Second,
		func(ctx context.Context, state model.AppState) error {
			_, err := adapter.SaveStateNow(ctx, state)

			return err
		},
	)

	return adapter
}

func (a *adapterImpl) LoadState(ctx context.Context) (model.AppState, error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, spanPrefix+"LoadState")
	defer scope.End()

	if a.store == nil {
		return model.EmptyState(), nil
	}

	if a.userID == "" {
		return model.EmptyState(), ErrNotAuthenticated
	}

	accountLog := logger.ForAccount(a.userID)

	var cached model.AppState

	err := a.cache.Get(ctx, a.cacheKey, &cached)
	if err == nil {
		a.setLoaded(true)
		accountLog.Debug().Msg("state served from cache")

		return cached.Defaulted(), nil
	}

	if !errors.Is(err, cache.Nil) {
		accountLog.Warn().Err(err).Msg("state cache unavailable, loading from store")
	}

	state, err := a.loadRemote(ctx)
	if err != nil {
		scope.TraceError(err)
		a.setLoaded(false)
		accountLog.Error().Err(err).Msg("failed to load state, continuing with empty state")

		return model.EmptyState(), fmt.Errorf("failed to load state: %w", err)
	}

	a.setLoaded(true)

	if err := a.cache.Save(ctx, a.cacheKey, state, a.cfg.Cache.TTL); err != nil {
		accountLog.Warn().Err(err).Msg("failed to cache loaded state")
	}

	accountLog.Info().
		Int("rooms", len(state.Rooms)).
		Int("bookings", len(state.Bookings)).
		Int("partners", len(state.Partners)).
		Msg("state loaded")

	return state, nil
}

func (a *adapterImpl) loadRemote(ctx context.Context) (model.AppState, error) {
	schemas := []tableSchema{
		roomsTable, bookingsTable, roomFinancialsTable, partnersTable,
		transactionsTable, monthlyControlsTable, forecastsTable, expensesTable,
	}
	results := make([][]gRepo.Row, len(schemas))

	group, groupCtx := errgroup.WithContext(ctx)

	for idx, schema := range schemas {
		group.Go(func() error {
			rows, err := a.store.Select(groupCtx, schema.name, a.scopeFor(schema))
			if err != nil {
				return &TableError{Table: schema.name, Err: err}
			}

			results[idx] = rows

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return model.AppState{}, err //nolint:wrapcheck
	}

	state := model.EmptyState()

	var err error

	if state.Rooms, err = decodeRows(TableRooms, results[0], RoomFromRow); err != nil {
		return model.AppState{}, err
	}

	if state.Bookings, err = decodeRows(TableBookings, results[1], BookingFromRow); err != nil {
		return model.AppState{}, err
	}

	catalogRows, hotelCostRows := splitFinancials(results[2])

	if state.CostCatalog, err = decodeRows(TableRoomFinancials, catalogRows, CostCatalogItemFromRow); err != nil {
		return model.AppState{}, err
	}

	if state.HotelCosts, err = decodeRows(TableRoomFinancials, hotelCostRows, HotelCostFromRow); err != nil {
		return model.AppState{}, err
	}

	if state.Partners, err = decodeRows(TablePartners, results[3], PartnerFromRow); err != nil {
		return model.AppState{}, err
	}

	if state.ManualReferrals, err = decodeRows(TableTransactions, results[4], ManualReferralFromRow); err != nil {
		return model.AppState{}, err
	}

	locks, err := decodeRows(TableMonthlyControls, results[5], MonthLockFromRow)
	if err != nil {
		return model.AppState{}, err
	}

	for _, lock := range locks {
		state.MonthLocks[lock.MonthKey] = lock
	}

	if state.Forecasts, err = decodeRows(TableForecasts, results[6], ForecastFromRow); err != nil {
		return model.AppState{}, err
	}

	if state.Expenses, err = decodeRows(TableExpenses, results[7], ExpenseFromRow); err != nil {
		return model.AppState{}, err
	}

	return state, nil
}

func splitFinancials(rows []gRepo.Row) (catalog, hotelCosts []gRepo.Row) {
	for _, row := range rows {
		switch row[colEntityType] {
		case EntityCostCatalog:
			catalog = append(catalog, row)
		case EntityHotelCost:
			hotelCosts = append(hotelCosts, row)
		}
	}

	return catalog, hotelCosts
}

func decodeRows[T any](table string, rows []gRepo.Row, decode func(gRepo.Row) (T, error)) ([]T, error) {
	items := make([]T, 0, len(rows))

	for _, row := range rows {
		item, err := decode(row)
		if err != nil {
			return nil, &TableError{Table: table, Err: err}
		}

		items = append(items, item)
	}

	return items, nil
}

func (a *adapterImpl) SaveState(state model.AppState) {
	if a.store == nil || a.userID == "" {
		return
	}

	a.scheduler.Schedule(state)
}

func (a *adapterImpl) SaveStateNow(ctx context.Context, state model.AppState) (SaveReport, error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, spanPrefix+"SaveState")
	defer scope.End()

	report := SaveReport{
		UserID:    a.userID,
		Saved:     []string{},
		Failed:    []string{},
		StartedAt: timezone.NowUTC(),
	}

	if a.store == nil {
		report.FinishedAt = timezone.NowUTC()

		return report, nil
	}

	if a.userID == "" {
		return report, ErrNotAuthenticated
	}

	a.saveMu.Lock()
	defer a.saveMu.Unlock()

	syncDeletes := a.isLoaded()
	batches := stateBatches(a.userID, state)
	results := make([]error, len(batches))

	// Tables are independent: one failure never cancels the others.
	var group errgroup.Group

	for idx, tableBatch := range batches {
		group.Go(func() error {
			results[idx] = a.saveBatch(ctx, tableBatch, syncDeletes)

			return nil
		})
	}

	_ = group.Wait()

	var saveErr *SaveError

	for idx, err := range results {
		table := batches[idx].schema.name
		if err == nil {
			report.Saved = append(report.Saved, table)

			continue
		}

		if saveErr == nil {
			saveErr = &SaveError{}
		}

		var tableErr *TableError
		if !errors.As(err, &tableErr) {
			tableErr = &TableError{Table: table, Err: err}
		}

		saveErr.Failures = append(saveErr.Failures, tableErr)
		report.Failed = append(report.Failed, table)
	}

	report.FinishedAt = timezone.NowUTC()

	if saveErr == nil {
		if err := a.cache.Save(ctx, a.cacheKey, state, a.cfg.Cache.TTL); err != nil {
			accountLog := logger.ForAccount(a.userID)
			accountLog.Warn().Err(err).Msg("failed to refresh state cache")
		}

		a.report(report)

		return report, nil
	}

	report.Errors = map[string]string{}
	report.SchemaOnly = true

	for _, failure := range saveErr.Failures {
		report.Errors[failure.Table] = failure.Err.Error()
		report.SchemaOnly = report.SchemaOnly && IsSchemaError(failure.Err)
	}

	scope.TraceError(saveErr)
	a.invalidateCache(ctx)
	a.report(report)

	return report, saveErr
}

func (a *adapterImpl) report(report SaveReport) {
	if a.onReport != nil {
		a.onReport(report)
	}
}

// saveBatch runs sanitize, key check, sync-delete and upsert for one table.
// A malformed batch fails before anything is deleted.
func (a *adapterImpl) saveBatch(ctx context.Context, tableBatch batch, syncDeletes bool) error {
	schema := tableBatch.schema
	tableLog := logger.ForTable(a.userID, schema.name)

	rows, stripped := sanitize(schema, tableBatch.rows)
	if len(stripped) > 0 {
		tableLog.Warn().Strs("columns", stripped).Msg("stripped columns unknown to table")
	}

	if err := checkKeys(schema, rows); err != nil {
		tableLog.Error().Err(err).Strs("key", schema.conflict).Msg("refusing to upsert rows without key")

		return &TableError{Table: schema.name, Err: err}
	}

	rows = dedupe(schema, rows)

	if syncDeletes && schema.syncScope != nil {
		if err := a.syncDelete(ctx, schema, rowIDs(rows)); err != nil {
			a.logFailure(tableLog, err, "failed to delete removed rows")

			return &TableError{Table: schema.name, Err: err}
		}
	}

	if err := a.store.Upsert(ctx, schema.name, schema.conflict, rows); err != nil {
		a.logFailure(tableLog, err, "failed to upsert rows")

		return &TableError{Table: schema.name, Err: err}
	}

	tableLog.Debug().Int("rows", len(rows)).Msg("table saved")

	return nil
}

// syncDelete removes the account's rows that are no longer in keep.
func (a *adapterImpl) syncDelete(ctx context.Context, schema tableSchema, keep []string) error {
	scopeFilter := schema.syncScope(a.userID)

	remoteIDs, err := a.store.SelectIDs(ctx, schema.name, scopeFilter)
	if err != nil {
		return fmt.Errorf("failed to list remote ids: %w", err)
	}

	stale := []string{}

	for _, id := range remoteIDs {
		if !slices.Contains(keep, id) {
			stale = append(stale, id)
		}
	}

	if len(stale) == 0 {
		return nil
	}

	filter := dto.And(scopeFilter, dto.In(colID, stale))
	if err := a.store.Delete(ctx, schema.name, filter); err != nil {
		return fmt.Errorf("failed to delete %d rows: %w", len(stale), err)
	}

	tableLog := logger.ForTable(a.userID, schema.name)
	tableLog.Info().Int("rows", len(stale)).Msg("deleted rows removed from state")

	return nil
}

func (a *adapterImpl) logFailure(tableLog zerolog.Logger, err error, msg string) {
	if IsSchemaError(err) {
		tableLog.Warn().Err(err).Msg(msg)

		return
	}

	tableLog.Error().Err(err).Msg(msg)
}

func (a *adapterImpl) scopeFor(schema tableSchema) dto.FilterGroup {
	if schema.syncScope != nil {
		return schema.syncScope(a.userID)
	}

	return shared.FilterByUser(a.userID)
}

func (a *adapterImpl) Flush(ctx context.Context) error {
	return a.scheduler.Flush(ctx)
}

func (a *adapterImpl) CancelPending() bool {
	return a.scheduler.CancelPending()
}

func (a *adapterImpl) Pending() bool {
	return a.scheduler.Pending()
}

func (a *adapterImpl) Close(ctx context.Context) error {
	if err := a.Flush(ctx); err != nil {
		return fmt.Errorf("failed to flush pending save: %w", err)
	}

	return nil
}

func (a *adapterImpl) UpdateBookingNow(ctx context.Context, booking model.Booking) (*model.Booking, error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, spanPrefix+"UpdateBookingNow")
	defer scope.End()

	if err := a.ready(); err != nil {
		return nil, err
	}

	if a.store == nil {
		return nil, nil //nolint:nilnil
	}

	if err := a.writeNow(ctx, bookingsBatch(a.userID, []model.Booking{booking})); err != nil {
		scope.TraceError(err)

		return nil, err
	}

	return &booking, nil
}

func (a *adapterImpl) SavePartnersNow(ctx context.Context, state model.AppState) error {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, spanPrefix+"SavePartnersNow")
	defer scope.End()

	if err := a.ready(); err != nil || a.store == nil || len(state.Partners) == 0 {
		return err
	}

	err := a.writeNow(ctx, partnersBatch(a.userID, state.Partners))
	scope.TraceIfError(err)

	return err
}

func (a *adapterImpl) DeletePartnerNow(ctx context.Context, partnerID string) error {
	return a.deleteNow(ctx, partnersTable, EntityPartner, partnerID)
}

func (a *adapterImpl) SaveManualReferralsNow(ctx context.Context, state model.AppState) error {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, spanPrefix+"SaveManualReferralsNow")
	defer scope.End()

	if err := a.ready(); err != nil || a.store == nil || len(state.ManualReferrals) == 0 {
		return err
	}

	err := a.writeNow(ctx, transactionsBatch(a.userID, state.ManualReferrals))
	scope.TraceIfError(err)

	return err
}

func (a *adapterImpl) DeleteManualReferralNow(ctx context.Context, referralID string) error {
	return a.deleteNow(ctx, transactionsTable, EntityManualReferral, referralID)
}

func (a *adapterImpl) DeleteExpenseNow(ctx context.Context, expenseID string) error {
	return a.deleteNow(ctx, expensesTable, EntityExpense, expenseID)
}

// AddRoomCostNow stores a catalog item bound to roomID.
func (a *adapterImpl) AddRoomCostNow(ctx context.Context, item model.CostCatalogItem, roomID string) error {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, spanPrefix+"AddRoomCostNow")
	defer scope.End()

	if err := a.ready(); err != nil || a.store == nil {
		return err
	}

	if roomID != "" {
		item.RoomID = &roomID
	}

	err := a.writeNow(ctx, roomFinancialsBatch(a.userID, []model.CostCatalogItem{item}, nil))
	scope.TraceIfError(err)

	return err
}

func (a *adapterImpl) writeNow(ctx context.Context, tableBatch batch) error {
	a.invalidateCache(ctx)

	return a.saveBatch(ctx, tableBatch, false)
}

func (a *adapterImpl) deleteNow(ctx context.Context, schema tableSchema, entityType, id string) error {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, spanPrefix+"Delete."+schema.name)
	defer scope.End()

	if err := a.ready(); err != nil || a.store == nil {
		return err
	}

	if id == "" {
		return &TableError{Table: schema.name, Err: ErrMissingKey}
	}

	a.invalidateCache(ctx)

	filter := dto.And(a.scopeFor(schema), dto.Eq(colID, StableID(a.userID, entityType, id)))
	if err := a.store.Delete(ctx, schema.name, filter); err != nil {
		scope.TraceError(err)
		a.logFailure(logger.ForTable(a.userID, schema.name), err, "failed to delete row")

		return &TableError{Table: schema.name, Err: err}
	}

	return nil
}

// ready rejects writes for an anonymous session. An unconfigured store is
// not an error; callers check a.store themselves.
func (a *adapterImpl) ready() error {
	if a.store != nil && a.userID == "" {
		return ErrNotAuthenticated
	}

	return nil
}

func (a *adapterImpl) invalidateCache(ctx context.Context) {
	if err := a.cache.Delete(ctx, a.cacheKey); err != nil {
		log.Warn().Err(err).Str("key", a.cacheKey).Msg("failed to drop state cache")
	}
}

func (a *adapterImpl) setLoaded(loaded bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.loaded = loaded
}

func (a *adapterImpl) isLoaded() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.loaded
}
