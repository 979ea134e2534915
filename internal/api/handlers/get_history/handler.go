package get_history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/apiarm/MRB-BookingService/internal/api/handlers"
	"github.com/apiarm/MRB-BookingService/internal/service/history"
	"github.com/apiarm/MRB-BookingService/internal/service/history/models"
	"github.com/apiarm/MRB-BookingService/pkg/ptr"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidAdminID   = "некорректный параметр adminId"
	msgInvalidPaging    = "некорректные параметры пагинации"
	msgInvalidFilter    = "некорректные параметры фильтрации"
	msgBookingNotFound  = "бронирование не найдено"
)

type Handler struct {
	service HistoryService
	logger  Logger
}

func NewHandler(service HistoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/history
// Query параметры: action, adminId, limit, offset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListHistoryRequest{}

	if action := query.Get("action"); action != "" {
		req.Action = ptr.Ptr(action)
	}

	if adminIDStr := query.Get("adminId"); adminIDStr != "" {
		adminID, err := strconv.ParseInt(adminIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /history - Invalid adminId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAdminID)
			return
		}
		req.AdminID = &adminID
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			h.logger.Warn("GET /history - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPaging)
			return
		}
		req.Limit = limit
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			h.logger.Warn("GET /history - Invalid offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPaging)
			return
		}
		req.Offset = offset
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, history.ErrInvalidInput):
			h.logger.Warn("GET /history - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /history - Failed to list history: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /history - Listed %d of %d records", len(result.Records), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSummary GET /api/v1/history/summary
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("GET /history/summary - Failed to build summary: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /history/summary - Summary built with %d action type(s)", len(result.Actions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleBookingHistory GET /api/v1/bookings/{bookingId}/history
func (h *Handler) HandleBookingHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/history - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	records, err := h.service.GetByBooking(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, history.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/history - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/history - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/history - Listed %d records for booking_id=%d", len(records), bookingID)
	handlers.RespondJSON(w, http.StatusOK, records)
}
