package get_room_availability

import (
	"github.com/apiarm/MRB-BookingService/internal/domain"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// Request запрос на получение доступности комнаты за период
type Request struct {
	RoomID int64
	From   types.Date
	To     types.Date
}

// Day доступность комнаты на одну дату
type Day struct {
	Date           types.Date        `json:"date"`
	Status         domain.DayStatus  `json:"status"`
	OccupiedSlots  []domain.TimeSlot `json:"occupiedSlots"`
	AvailableSlots []domain.TimeSlot `json:"availableSlots"`
}

// Response календарь доступности комнаты
type Response struct {
	RoomID   int64      `json:"roomId"`
	RoomName string     `json:"roomName"`
	From     types.Date `json:"from"`
	To       types.Date `json:"to"`
	Days     []Day      `json:"days"`
}
