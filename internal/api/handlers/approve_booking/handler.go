package approve_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/apiarm/MRB-BookingService/internal/api/handlers"
	"github.com/apiarm/MRB-BookingService/internal/api/middleware"
	"github.com/apiarm/MRB-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingAdminID   = "отсутствует ID администратора"
	msgNotFound         = "бронирование не найдено"
	msgAlreadyReviewed  = "решение по заявке уже принято"
	msgApproved         = "заявка одобрена"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/approve - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/approve - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	if err := h.service.Approve(r.Context(), bookingID, adminID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/approve - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyReviewed):
			h.logger.Warn("POST /bookings/{id}/approve - Already reviewed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReviewed)

		default:
			h.logger.Error("POST /bookings/{id}/approve - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/approve - Booking approved: booking_id=%d, admin_id=%d", bookingID, adminID)
	handlers.RespondMessage(w, http.StatusOK, msgApproved)
}
