package bookings

import (
	"errors"
	"fmt"

	"github.com/apiarm/MRB-BookingService/pkg/types"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotUpdate возвращается, когда бронирование не может быть изменено
	ErrCannotUpdate = errors.New("booking cannot be updated")

	// ErrAlreadyReviewed возвращается, когда решение по заявке уже принято
	ErrAlreadyReviewed = errors.New("booking has already been reviewed")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCannotDelete возвращается при удалении заявки, не достигшей финального статуса
	ErrCannotDelete = errors.New("only rejected or cancelled bookings can be deleted")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// Violation конфликт одной даты при изменении заявки
type Violation struct {
	Date   types.Date
	Reason string
}

// SlotConflictError накапливает конфликты по всем датам измененной заявки
type SlotConflictError struct {
	Violations []Violation
}

// Error implements the error interface
func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("booking update rejected: %d conflicting day(s)", len(e.Violations))
}
