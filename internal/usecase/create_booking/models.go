package create_booking

import (
	"time"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Одна заявка может покрывать несколько дат; слот один и тот же на каждой.
// Все поля уже приведены к типизированным значениям на границе HTTP.
type Request struct {
	RoomID       int64
	Dates        []types.Date
	TimeSlot     domain.TimeSlot
	BookerName   string
	PhoneNumber  string
	MeetingTitle string
	Department   string

	NeedBreak      bool
	BreakDetails   *string
	BreakOrganizer *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	BookingCode string
	RoomID      int64
	Dates       []types.Date
	TimeSlot    domain.TimeSlot
	Status      domain.BookingStatus
	CreatedAt   time.Time
}

// DayRequest одна дата заявки со своим слотом
// Валидатор черновика работает с парами (дата, слот)
type DayRequest struct {
	Date types.Date
	Slot domain.TimeSlot
}

// Violation конфликт одной даты заявки
type Violation struct {
	Date   types.Date
	Reason string
}
