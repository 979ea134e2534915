package cancel_booking

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
	msgCannotCancel     = "бронирование не может быть отменено"
	msgCannotDelete     = "удалять можно только отклоненные и отмененные заявки"
	msgCancelled        = "бронирование отменено"
	msgDeleted          = "бронирование удалено"
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

// Handle DELETE /api/v1/bookings/{bookingId}
// По умолчанию отменяет заявку; ?purge=true удаляет запись финальной заявки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{id} - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	purge := r.URL.Query().Get("purge") == "true"

	if purge {
		err = h.service.Delete(r.Context(), bookingID, adminID)
	} else {
		err = h.service.Cancel(r.Context(), bookingID, adminID)
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("DELETE /bookings/{id} - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, bookings.ErrCannotDelete):
			h.logger.Warn("DELETE /bookings/{id} - Cannot delete: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotDelete)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed: booking_id=%d, purge=%v, error=%v",
				bookingID, purge, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if purge {
		h.logger.Info("DELETE /bookings/{id} - Booking deleted: booking_id=%d, admin_id=%d", bookingID, adminID)
		handlers.RespondMessage(w, http.StatusOK, msgDeleted)
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: booking_id=%d, admin_id=%d", bookingID, adminID)
	handlers.RespondMessage(w, http.StatusOK, msgCancelled)
}
