package hotel

import (
	"net/http"
	"reziro/internal/domains/hotel/model/dto"
	"reziro/shared/constant"
	"reziro/transport/http/response"

	"github.com/go-chi/chi/v5"
)

func (handler *Handler) CreatePartner(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePartner")
	defer scope.End()

	req, ok := decode[dto.CreatePartnerRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	partner, err := store.AddPartner(ctx, req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to create partner")

		return
	}

	scope.AddEvent("Partner created successfully by user " + store.UserID())

	response.WithJSON(writer, http.StatusCreated, partner)
}

func (handler *Handler) UpdatePartner(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePartner")
	defer scope.End()

	req, ok := decode[dto.UpdatePartnerRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	partner, err := store.UpdatePartner(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to update partner")

		return
	}

	response.WithJSON(writer, http.StatusOK, partner)
}

func (handler *Handler) TogglePartner(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TogglePartner")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	partner, err := store.TogglePartnerActive(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		handler.fail(writer, scope, err, "failed to toggle partner")

		return
	}

	response.WithJSON(writer, http.StatusOK, partner)
}

// DeletePartner removes the partner; referrals already recorded stay.
// @Summary Delete partner
// @Tags Partner
// @Param id path string true "Partner ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/partners/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePartner(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePartner")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	if err := store.DeletePartner(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		handler.fail(writer, scope, err, "failed to delete partner")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Partner deleted successfully")
}

// GetPartnerStats covers the selected month, or all time with ?allTime=true.
// @Summary Partner statistics
// @Tags Partner
// @Produce json
// @Param id path string true "Partner ID"
// @Param allTime query boolean false "Ignore the selected month"
// @Success 200 {object} response.Data[model.PartnerStats]
// @Failure 404 {object} response.Error
// @Router /v1/partners/{id}/stats [get]
// @Security BearerAuth
func (handler *Handler) GetPartnerStats(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPartnerStats")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	stats, err := store.PartnerStats(chi.URLParam(request, constant.RequestParamID), allTime(request))
	if err != nil {
		handler.fail(writer, scope, err, "failed to get partner stats")

		return
	}

	response.WithJSON(writer, http.StatusOK, stats)
}

func (handler *Handler) GetAllPartnerStats(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllPartnerStats")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	response.WithJSON(writer, http.StatusOK, store.AllPartnerStats(allTime(request)))
}

// Manual referrals

func (handler *Handler) CreateManualReferral(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateManualReferral")
	defer scope.End()

	req, ok := decode[dto.CreateManualReferralRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	referral, err := store.AddManualReferral(ctx, req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to create manual referral")

		return
	}

	response.WithJSON(writer, http.StatusCreated, referral)
}

func (handler *Handler) UpdateManualReferral(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateManualReferral")
	defer scope.End()

	req, ok := decode[dto.UpdateManualReferralRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	referral, err := store.UpdateManualReferral(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to update manual referral")

		return
	}

	response.WithJSON(writer, http.StatusOK, referral)
}

func (handler *Handler) DeleteManualReferral(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteManualReferral")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	if err := store.DeleteManualReferral(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		handler.fail(writer, scope, err, "failed to delete manual referral")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Manual referral deleted successfully")
}
