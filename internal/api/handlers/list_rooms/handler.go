package list_rooms

import (
	"net/http"

	"github.com/apiarm/MRB-BookingService/internal/api/handlers"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
// По умолчанию отдаются только активные комнаты; ?all=true включает выключенные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Listed %d rooms, activeOnly=%v", len(result.Rooms), activeOnly)
	handlers.RespondJSON(w, http.StatusOK, result)
}
