package get_room_availability

import "errors"

var (
	// ErrRoomNotFound комната не найдена
	ErrRoomNotFound = errors.New("room not found")
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrRangeTooLarge запрошенный период превышает допустимый
	ErrRangeTooLarge = errors.New("date range too large")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
