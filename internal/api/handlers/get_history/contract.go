package get_history

import (
	"context"

	"github.com/apiarm/MRB-BookingService/internal/service/history/models"
)

type HistoryService interface {
	List(ctx context.Context, req *models.ListHistoryRequest) (*models.HistoryListResponse, error)
	GetByBooking(ctx context.Context, bookingID int64) ([]models.HistoryRecordResponse, error)
	Summary(ctx context.Context) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
