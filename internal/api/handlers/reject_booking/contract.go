package reject_booking

import "context"

type BookingService interface {
	Reject(ctx context.Context, id int64, adminID int64, reason *string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
