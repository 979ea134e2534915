package create_booking

import (
	"fmt"
	"time"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	createBooking "github.com/apiarm/MRB-BookingService/internal/usecase/create_booking"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP модель запроса на создание бронирования
type CreateBookingRequest struct {
	RoomID       int64    `json:"roomId"`
	Dates        []string `json:"dates"` // YYYY-MM-DD
	TimeSlot     string   `json:"timeSlot"`
	BookerName   string   `json:"bookerName"`
	PhoneNumber  string   `json:"phoneNumber"`
	MeetingTitle string   `json:"meetingTitle"`
	Department   string   `json:"department"`

	NeedBreak      bool    `json:"needBreak"`
	BreakDetails   *string `json:"breakDetails,omitempty"`
	BreakOrganizer *string `json:"breakOrganizer,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	dates := make([]types.Date, len(r.Dates))
	for i, s := range r.Dates {
		d, err := types.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		dates[i] = d
	}

	return &createBooking.Request{
		RoomID:         r.RoomID,
		Dates:          dates,
		TimeSlot:       domain.TimeSlot(r.TimeSlot),
		BookerName:     r.BookerName,
		PhoneNumber:    r.PhoneNumber,
		MeetingTitle:   r.MeetingTitle,
		Department:     r.Department,
		NeedBreak:      r.NeedBreak,
		BreakDetails:   r.BreakDetails,
		BreakOrganizer: r.BreakOrganizer,
	}, nil
}

// CreateBookingResponse HTTP модель ответа с созданным бронированием
type CreateBookingResponse struct {
	ID          int64        `json:"id"`
	BookingCode string       `json:"bookingCode"`
	RoomID      int64        `json:"roomId"`
	Dates       []types.Date `json:"dates"`
	TimeSlot    string       `json:"timeSlot"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// ViolationResponse конфликт одной даты заявки
type ViolationResponse struct {
	Date   string `json:"date,omitempty"`
	Reason string `json:"reason"`
}

// ConflictResponse детали отклоненного черновика
type ConflictResponse struct {
	Violations []ViolationResponse `json:"violations"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:          resp.ID,
		BookingCode: resp.BookingCode,
		RoomID:      resp.RoomID,
		Dates:       resp.Dates,
		TimeSlot:    string(resp.TimeSlot),
		Status:      string(resp.Status),
		CreatedAt:   resp.CreatedAt,
	}
}

// FromViolations конвертирует нарушения черновика в HTTP модель.
// Нулевая дата означает нарушение уровня заявки, а не конкретного дня.
func FromViolations(violations []createBooking.Violation) *ConflictResponse {
	resp := &ConflictResponse{
		Violations: make([]ViolationResponse, len(violations)),
	}
	for i, v := range violations {
		vr := ViolationResponse{Reason: v.Reason}
		if !v.Date.IsZero() {
			vr.Date = v.Date.String()
		}
		resp.Violations[i] = vr
	}
	return resp
}
