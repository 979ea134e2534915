package list_rooms

import (
	"context"

	"github.com/apiarm/MRB-BookingService/internal/service/rooms/models"
)

type RoomService interface {
	List(ctx context.Context, activeOnly bool) (*models.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
