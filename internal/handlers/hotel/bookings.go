package hotel

import (
	"net/http"
	"reziro/internal/domains/hotel/model/dto"
	"reziro/shared/constant"
	"reziro/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// CreateRoom adds a room.
// @Summary Create room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room"
// @Success 201 {object} response.Data[model.Room]
// @Failure 400 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req, ok := decode[dto.CreateRoomRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	room, err := store.AddRoom(ctx, req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to create room")

		return
	}

	scope.AddEvent("Room created successfully by user " + store.UserID())

	response.WithJSON(writer, http.StatusCreated, room)
}

func (handler *Handler) UpdateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	req, ok := decode[dto.UpdateRoomRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	room, err := store.UpdateRoom(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to update room")

		return
	}

	response.WithJSON(writer, http.StatusOK, room)
}

// DeleteRoom removes a room together with its bookings.
// @Summary Delete room
// @Tags Room
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	if err := store.DeleteRoom(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		handler.fail(writer, scope, err, "failed to delete room")

		return
	}

	scope.AddEvent("Room deleted successfully by user " + store.UserID())

	response.WithMessage(writer, http.StatusOK, "Room deleted successfully")
}

// AddRoomCost adds a catalog item bound to one room.
// @Summary Add room cost
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.CreateCostCatalogItemRequest true "Cost item"
// @Success 201 {object} response.Data[model.CostCatalogItem]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/costs [post]
// @Security BearerAuth
func (handler *Handler) AddRoomCost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoomCost")
	defer scope.End()

	req, ok := decode[dto.CreateCostCatalogItemRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	item, err := store.AddRoomCost(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to add room cost")

		return
	}

	response.WithJSON(writer, http.StatusCreated, item)
}

// CreateBooking books a room. Overlaps answer 409 and closed months 423.
// @Summary Create booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Data[model.Booking]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 423 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req, ok := decode[dto.CreateBookingRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	booking, err := store.TryCreateBooking(ctx, req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to create booking")

		return
	}

	scope.AddEvent("Booking created successfully by user " + store.UserID())

	response.WithJSON(writer, http.StatusCreated, booking)
}

// CheckConflicts lists the bookings a date range would overlap.
// @Summary Check booking conflicts
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.ConflictRequest true "Range"
// @Success 200 {object} response.Data[dto.ConflictResponse]
// @Router /v1/bookings/conflicts [post]
// @Security BearerAuth
func (handler *Handler) CheckConflicts(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckConflicts")
	defer scope.End()

	req, ok := decode[dto.ConflictRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	conflicts := store.Conflicts(req.RoomID, req.StartDate, req.EndDate, req.ExcludeID)

	response.WithJSON(writer, http.StatusOK, dto.ConflictResponse{
		Conflict:  len(conflicts) > 0,
		Conflicts: conflicts,
	})
}

func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	req, ok := decode[dto.UpdateBookingRequest](handler, writer, request, scope)
	if !ok {
		return
	}

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	booking, err := store.TryUpdateBooking(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		handler.fail(writer, scope, err, "failed to update booking")

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	store, ok := handler.store(writer, request, scope)
	if !ok {
		return
	}

	if err := store.DeleteBooking(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		handler.fail(writer, scope, err, "failed to delete booking")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking deleted successfully")
}
