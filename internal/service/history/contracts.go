package history

import (
	"context"

	"github.com/apiarm/MRB-BookingService/internal/domain"
)

// HistoryRepository интерфейс репозитория журнала решений
type HistoryRepository interface {
	List(ctx context.Context, filter domain.HistoryFilter) ([]*domain.HistoryRecord, int, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.HistoryRecord, error)
	ActionSummary(ctx context.Context) ([]domain.ActionCount, error)
	TopAdmins(ctx context.Context, limit int) ([]domain.AdminActivity, error)
	RecentActivity(ctx context.Context, days int) ([]domain.DailyActivity, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
