package hotel

import (
	"errors"
	"net/http"
	"reziro/infras/otel"
	"reziro/internal/domains/hotel/model/dto"
	"reziro/internal/domains/hotel/repository"
	"reziro/internal/domains/hotel/service"
	"reziro/shared"
	"reziro/shared/constant"
	"reziro/shared/failure"
	"reziro/shared/validator"
	"reziro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryAllTime = "allTime"

type Handler struct {
	sessions service.Sessions
	exporter service.Exporter
	otel     otel.Otel
}

func New(sessions service.Sessions, exporter service.Exporter, otel otel.Otel) Handler {
	return Handler{
		sessions: sessions,
		exporter: exporter,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/state", handler.GetState)
	router.Put("/ui/month", handler.SelectMonth)

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
		routerGroup.Post("/{id}/costs", handler.AddRoomCost)
	})

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Post("/conflicts", handler.CheckConflicts)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})

	router.Route("/months/{monthKey}", func(routerGroup chi.Router) {
		routerGroup.Post("/lock", handler.ToggleMonthLock)
		routerGroup.Get("/summary", handler.GetMonthSummary)
		routerGroup.Post("/export", handler.ExportMonth)
	})

	router.Route("/forecasts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateForecast)
		routerGroup.Patch("/{id}", handler.UpdateForecast)
		routerGroup.Delete("/{id}", handler.DeleteForecast)
	})

	router.Route("/expenses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateExpense)
		routerGroup.Patch("/{id}", handler.UpdateExpense)
		routerGroup.Delete("/{id}", handler.DeleteExpense)
	})

	router.Route("/hotel-costs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotelCost)
		routerGroup.Patch("/{id}", handler.UpdateHotelCost)
		routerGroup.Post("/{id}/toggle", handler.ToggleHotelCost)
		routerGroup.Delete("/{id}", handler.DeleteHotelCost)
	})

	router.Route("/cost-catalog", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCostCatalogItem)
		routerGroup.Patch("/{id}", handler.UpdateCostCatalogItem)
		routerGroup.Delete("/{id}", handler.DeleteCostCatalogItem)
	})

	router.Route("/partners", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePartner)
		routerGroup.Get("/stats", handler.GetAllPartnerStats)
		routerGroup.Patch("/{id}", handler.UpdatePartner)
		routerGroup.Post("/{id}/toggle", handler.TogglePartner)
		routerGroup.Delete("/{id}", handler.DeletePartner)
		routerGroup.Get("/{id}/stats", handler.GetPartnerStats)
	})

	router.Route("/manual-referrals", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateManualReferral)
		routerGroup.Patch("/{id}", handler.UpdateManualReferral)
		routerGroup.Delete("/{id}", handler.DeleteManualReferral)
	})

	router.Post("/sync/flush", handler.Flush)
	router.Get("/sync/status", handler.GetSyncStatus)
	router.Delete("/session", handler.EndSession)
}

// toFailure maps store rejections onto HTTP failures, keeping the cause.
func toFailure(err error) error {
	var fail *failure.Failure

	switch {
	case errors.As(err, &fail):
		return err
	case errors.Is(err, service.ErrMonthLocked):
		return failure.Wrap(http.StatusLocked, err)
	case errors.Is(err, service.ErrBookingConflict):
		return failure.Wrap(http.StatusConflict, err)
	case errors.Is(err, service.ErrNotFound):
		return failure.Wrap(http.StatusNotFound, err)
	case errors.Is(err, service.ErrInvalidInput):
		return failure.BadRequest(err)
	case errors.Is(err, repository.ErrNotAuthenticated):
		return failure.Wrap(http.StatusUnauthorized, err)
	case errors.Is(err, service.ErrExportDisabled):
		return failure.Wrap(http.StatusServiceUnavailable, err)
	default:
		return failure.InternalError(err)
	}
}

func (handler *Handler) fail(writer http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)

	mapped := toFailure(err)

	if failure.GetCode(mapped) >= http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Msg(msg)
	}

	response.WithError(writer, mapped)
}

func userID(request *http.Request) string {
	user, _ := request.Context().Value(constant.ContextKeyUserID).(string)

	return user
}

// store resolves the caller's session, hydrating it on first use.
func (handler *Handler) store(writer http.ResponseWriter, request *http.Request, scope otel.Scope) (*service.Store, bool) {
	store, err := handler.sessions.Get(request.Context(), userID(request))
	if err != nil {
		handler.fail(writer, scope, err, "failed to open session")

		return nil, false
	}

	return store, true
}

// decode reads and validates a JSON body into T.
func decode[T any](handler *Handler, writer http.ResponseWriter, request *http.Request, scope otel.Scope) (T, bool) {
	var req T

	if err := validator.Validate(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "failed to validate request body")

		return req, false
	}

	return req, true
}

func allTime(request *http.Request) bool {
	value := shared.ConvertStringToBool(request.URL.Query().Get(queryAllTime))

	return value != nil && *value
}

// GetState returns the caller's whole state and UI selection.
// @Summary Get account state
// @Tags Hotel
// @Produce json
// @Success 200 {object} response.Data[dto.StateResponse]
// @Failure 401 {object} response.Error
// @Router /v1/state [get]
// @Security BearerAuth
func (handler *Handler) GetState(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetState")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	response.WithJSON(writer, http.StatusOK, dto.StateResponse{State: store.State(), UI: store.UI()})
}

// SelectMonth changes the month the summary and period-keyed writes use.
// @Summary Select working month
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.SelectMonthRequest true "Month selection"
// @Success 200 {object} response.Data[model.UIState]
// @Failure 400 {object} response.Error
// @Router /v1/ui/month [put]
// @Security BearerAuth
func (handler *Handler) SelectMonth(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectMonth")
	defer scope.End()

	req, ok := decode[dto.SelectMonthRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	if err := store.SetSelectedMonth(req.MonthKey, req.RoomID); err != nil {
		handler.fail(writer, scope, err, "failed to select month")

		return
	}

	response.WithJSON(writer, http.StatusOK, store.UI())
}

// ToggleMonthLock opens or closes a month for new bookings.
// @Summary Toggle month lock
// @Tags Hotel
// @Produce json
// @Param monthKey path string true "Month (YYYY-MM)"
// @Success 200 {object} response.Data[model.MonthLock]
// @Failure 400 {object} response.Error
// @Router /v1/months/{monthKey}/lock [post]
// @Security BearerAuth
func (handler *Handler) ToggleMonthLock(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleMonthLock")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	lock, err := store.ToggleMonthLock(ctx, chi.URLParam(request, constant.RequestParamMonthKey))
	if err != nil {
		handler.fail(writer, scope, err, "failed to toggle month lock")

		return
	}

	scope.AddEvent("Month lock toggled by user " + store.UserID())

	response.WithJSON(writer, http.StatusOK, lock)
}

// GetMonthSummary aggregates one month. The literal "current" means the
// selected month.
// @Summary Month summary
// @Tags Hotel
// @Produce json
// @Param monthKey path string true "Month (YYYY-MM) or current"
// @Success 200 {object} response.Data[model.MonthSummary]
// @Failure 400 {object} response.Error
// @Router /v1/months/{monthKey}/summary [get]
// @Security BearerAuth
func (handler *Handler) GetMonthSummary(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthSummary")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	summary, err := store.MonthSummary(monthParam(request))
	if err != nil {
		handler.fail(writer, scope, err, "failed to summarize month")

		return
	}

	response.WithJSON(writer, http.StatusOK, summary)
}

// ExportMonth uploads the month report and returns its public URL.
// @Summary Export month report
// @Tags Hotel
// @Produce json
// @Param monthKey path string true "Month (YYYY-MM) or current"
// @Success 201 {object} response.Data[dto.ExportResponse]
// @Failure 503 {object} response.Error
// @Router /v1/months/{monthKey}/export [post]
// @Security BearerAuth
func (handler *Handler) ExportMonth(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportMonth")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	res, err := handler.exporter.ExportMonth(ctx, store, monthParam(request))
	if err != nil {
		handler.fail(writer, scope, err, "failed to export month")

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

const currentMonth = "current"

func monthParam(request *http.Request) string {
	monthKey := chi.URLParam(request, constant.RequestParamMonthKey)
	if monthKey == currentMonth {
		return constant.Empty
	}

	return monthKey
}

// Flush writes the pending debounced save before responding.
// @Summary Flush pending save
// @Tags Sync
// @Success 200 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/sync/flush [post]
// @Security BearerAuth
func (handler *Handler) Flush(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Flush")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	if err := store.Flush(ctx); err != nil {
		handler.fail(writer, scope, err, "failed to flush state")

		return
	}

	response.WithMessage(writer, http.StatusOK, "State saved")
}

// GetSyncStatus reports whether a save is pending and how the last one went.
// @Summary Sync status
// @Tags Sync
// @Produce json
// @Success 200 {object} response.Data[dto.SyncStatusResponse]
// @Router /v1/sync/status [get]
// @Security BearerAuth
func (handler *Handler) GetSyncStatus(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSyncStatus")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	status := dto.SyncStatusResponse{
		Pending:    store.PendingSave(),
		LastSaved:  []string{},
		LastFailed: []string{},
	}

	if report, found := handler.sessions.LastReport(store.UserID()); found {
		finished := report.FinishedAt.Format(constant.TimestampFormat)

		status.LastSaved = append(status.LastSaved, report.Saved...)
		status.LastFailed = append(status.LastFailed, report.Failed...)
		status.LastErrors = report.Errors
		status.LastSchema = report.SchemaOnly
		status.LastFinished = &finished
	}

	response.WithJSON(writer, http.StatusOK, status)
}

// EndSession flushes and drops the caller's in-memory state.
// @Summary End session
// @Tags Sync
// @Success 200 {object} response.Message
// @Router /v1/session [delete]
// @Security BearerAuth
func (handler *Handler) EndSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EndSession")
	defer scope.End()

	if err := handler.sessions.End(ctx, userID(request)); err != nil {
		handler.fail(writer, scope, err, "failed to end session")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Session ended")
}
