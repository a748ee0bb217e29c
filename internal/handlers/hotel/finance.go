package hotel

import (
	"net/http"
	"reziro/internal/domains/hotel/model/dto"
	"reziro/shared/constant"
	"reziro/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Forecasts

func (handler *Handler) CreateForecast(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateForecast")
	defer scope.End()

	req, ok := decode[dto.CreateForecastRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	forecast, err := store.AddForecast(ctx, req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to create forecast")

		return
	}

	response.WithJSON(writer, http.StatusCreated, forecast)
}

func (handler *Handler) UpdateForecast(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateForecast")
	defer scope.End()

	req, ok := decode[dto.UpdateForecastRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	forecast, err := store.UpdateForecast(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to update forecast")

		return
	}

	response.WithJSON(writer, http.StatusOK, forecast)
}

func (handler *Handler) DeleteForecast(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteForecast")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	if err := store.DeleteForecast(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		handler.fail(writer, scope, err, "failed to delete forecast")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Forecast deleted successfully")
}

// Expenses

// CreateExpense records an expense. With a bookingId its cost lines are
// folded into that booking.
// @Summary Create expense
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} response.Data[model.Expense]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/expenses [post]
// @Security BearerAuth
func (handler *Handler) CreateExpense(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExpense")
	defer scope.End()

	req, ok := decode[dto.CreateExpenseRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	expense, err := store.AddExpense(ctx, req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to create expense")

		return
	}

	response.WithJSON(writer, http.StatusCreated, expense)
}

func (handler *Handler) UpdateExpense(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateExpense")
	defer scope.End()

	req, ok := decode[dto.UpdateExpenseRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	expense, err := store.UpdateExpense(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to update expense")

		return
	}

	response.WithJSON(writer, http.StatusOK, expense)
}

func (handler *Handler) DeleteExpense(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteExpense")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	if err := store.DeleteExpense(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		handler.fail(writer, scope, err, "failed to delete expense")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Expense deleted successfully")
}

// Hotel costs

func (handler *Handler) CreateHotelCost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotelCost")
	defer scope.End()

	req, ok := decode[dto.CreateHotelCostRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	cost, err := store.AddHotelCost(ctx, req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to create hotel cost")

		return
	}

	response.WithJSON(writer, http.StatusCreated, cost)
}

func (handler *Handler) UpdateHotelCost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotelCost")
	defer scope.End()

	req, ok := decode[dto.UpdateHotelCostRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	cost, err := store.UpdateHotelCost(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to update hotel cost")

		return
	}

	response.WithJSON(writer, http.StatusOK, cost)
}

func (handler *Handler) ToggleHotelCost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleHotelCost")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	cost, err := store.ToggleHotelCostActive(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		handler.fail(writer, scope, err, "failed to toggle hotel cost")

		return
	}

	response.WithJSON(writer, http.StatusOK, cost)
}

func (handler *Handler) DeleteHotelCost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotelCost")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	if err := store.DeleteHotelCost(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		handler.fail(writer, scope, err, "failed to delete hotel cost")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Hotel cost deleted successfully")
}

// Cost catalog

func (handler *Handler) CreateCostCatalogItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCostCatalogItem")
	defer scope.End()

	req, ok := decode[dto.CreateCostCatalogItemRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	item, err := store.AddCostCatalogItem(ctx, req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to create cost catalog item")

		return
	}

	response.WithJSON(writer, http.StatusCreated, item)
}

func (handler *Handler) UpdateCostCatalogItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCostCatalogItem")
	defer scope.End()

	req, ok := decode[dto.UpdateCostCatalogItemRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	item, err := store.UpdateCostCatalogItem(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to update cost catalog item")

		return
	}

	response.WithJSON(writer, http.StatusOK, item)
}

func (handler *Handler) DeleteCostCatalogItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCostCatalogItem")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	if err := store.DeleteCostCatalogItem(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		handler.fail(writer, scope, err, "failed to delete cost catalog item")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Cost catalog item deleted successfully")
}
