package update_booking

import (
	"github.com/apiarm/MRB-BookingService/internal/service/bookings"
)

// ViolationResponse конфликт одной даты заявки
type ViolationResponse struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// ConflictResponse детали отклоненного изменения
type ConflictResponse struct {
	Violations []ViolationResponse `json:"violations"`
}

// FromViolations конвертирует нарушения в HTTP модель
func FromViolations(violations []bookings.Violation) *ConflictResponse {
	resp := &ConflictResponse{
		Violations: make([]ViolationResponse, len(violations)),
	}
	for i, v := range violations {
		resp.Violations[i] = ViolationResponse{
			Date:   v.Date.String(),
			Reason: v.Reason,
		}
	}
	return resp
}
