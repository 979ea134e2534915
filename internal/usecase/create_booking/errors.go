package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomInactive возвращается при попытке бронирования выключенной комнаты
	ErrRoomInactive = errors.New("room is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateInPast возвращается, когда заявка содержит прошедшую дату
	ErrDateInPast = errors.New("booking date is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// SlotConflictError накапливает конфликты по всем датам заявки.
// Конфликт слота — ожидаемый исход, а не исключение: список нарушений
// отдается клиенту целиком, чтобы не гонять пользователя по одному дню.
type SlotConflictError struct {
	Violations []Violation
}

// Error implements the error interface
func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("booking draft rejected: %d conflicting day(s)", len(e.Violations))
}
