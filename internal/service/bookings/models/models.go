package models

import (
	"errors"
	"time"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	RoomID       *int64      `json:"roomId,omitempty"`       // Фильтр по комнате (опционально)
	Status       *string     `json:"status,omitempty"`       // Фильтр по статусу (опционально)
	Date         *types.Date `json:"date,omitempty"`         // Бронирования на конкретную дату (опционально)
	IncludeFinal bool        `json:"includeFinal,omitempty"` // Включить rejected/cancelled
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID:       r.RoomID,
		Date:         r.Date,
		IncludeFinal: r.IncludeFinal,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateBookingRequest запрос на изменение заявки.
// Заявка заменяется целиком: даты, слот и реквизиты встречи.
type UpdateBookingRequest struct {
	Dates        []types.Date `json:"dates"`
	TimeSlot     string       `json:"timeSlot"`
	BookerName   string       `json:"bookerName"`
	PhoneNumber  string       `json:"phoneNumber"`
	MeetingTitle string       `json:"meetingTitle"`
	Department   string       `json:"department"`

	NeedBreak      bool    `json:"needBreak"`
	BreakDetails   *string `json:"breakDetails,omitempty"`
	BreakOrganizer *string `json:"breakOrganizer,omitempty"`
}

// RejectBookingRequest запрос на отклонение заявки
type RejectBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64        `json:"id"`
	BookingCode string       `json:"bookingCode"`
	RoomID      int64        `json:"roomId"`
	Dates       []types.Date `json:"dates"`
	TimeSlot    string       `json:"timeSlot"`
	Status      string       `json:"status"`

	BookerName   string `json:"bookerName"`
	PhoneNumber  string `json:"phoneNumber"`
	MeetingTitle string `json:"meetingTitle"`
	Department   string `json:"department"`

	NeedBreak      bool    `json:"needBreak"`
	BreakDetails   *string `json:"breakDetails,omitempty"`
	BreakOrganizer *string `json:"breakOrganizer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		BookingCode:    b.BookingCode,
		RoomID:         b.RoomID,
		Dates:          b.Dates,
		TimeSlot:       string(b.TimeSlot),
		Status:         string(b.Status),
		BookerName:     b.BookerName,
		PhoneNumber:    b.PhoneNumber,
		MeetingTitle:   b.MeetingTitle,
		Department:     b.Department,
		NeedBreak:      b.NeedBreak,
		BreakDetails:   b.BreakDetails,
		BreakOrganizer: b.BreakOrganizer,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, err := domain.ParseBookingStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return s, nil
}
