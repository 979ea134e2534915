package get_room_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/apiarm/MRB-BookingService/internal/api/handlers"
	getRoomAvailability "github.com/apiarm/MRB-BookingService/internal/usecase/get_room_availability"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound  = "комната не найдена"
	msgRangeTooLarge = "запрошенный период слишком велик"
)

type Handler struct {
	useCase GetRoomAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?from=YYYY-MM-DD&to=YYYY-MM-DD
// Без параметра to отдается доступность одного дня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()

	from, err := types.ParseDate(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to := from
	if toStr := query.Get("to"); toStr != "" {
		to, err = types.ParseDate(toStr)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/availability - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomAvailability.Request{
		RoomID: roomID,
		From:   from,
		To:     to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRoomAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomAvailability.ErrRangeTooLarge):
			h.logger.Warn("GET /rooms/{id}/availability - Range too large: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getRoomAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/availability - Computed %d day(s) for room_id=%d", len(result.Days), roomID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
