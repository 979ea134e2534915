package get_booking

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/apiarm/MRB-BookingService/internal/api/handlers"
	"github.com/apiarm/MRB-BookingService/internal/service/bookings"
	"github.com/apiarm/MRB-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
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

// Handle GET /api/v1/bookings/{bookingId}
// Принимает числовой ID или публичный код заявки вида BK-XXXXXXXX
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := vars["bookingId"]

	var (
		booking *models.BookingResponse
		err     error
	)

	if strings.HasPrefix(key, "BK-") {
		booking, err = h.service.GetByCode(r.Context(), key)
	} else {
		bookingID, parseErr := strconv.ParseInt(key, 10, 64)
		if parseErr != nil {
			h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", parseErr)
			handlers.RespondBadRequest(w, msgInvalidBookingID)
			return
		}
		booking, err = h.service.GetByID(r.Context(), bookingID)
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: key=%s", key)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%d", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
