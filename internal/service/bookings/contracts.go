package bookings

import (
	"context"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ListByRoomAndDates(ctx context.Context, roomID int64, dates []types.Date) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// HistoryRepository интерфейс репозитория журнала решений
type HistoryRepository interface {
	Create(ctx context.Context, record *domain.HistoryRecord) (*domain.HistoryRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier уведомляет администраторов о решениях по заявкам (best-effort)
type Notifier interface {
	BookingReviewed(booking *domain.Booking, action domain.HistoryAction, adminID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
