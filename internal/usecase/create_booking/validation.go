package create_booking

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// phonePattern внутренний 5-значный номер или городской 9-10 значный
var phonePattern = regexp.MustCompile(`^(?:[0-9]{5}|[0-9]{9,10})$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if !req.TimeSlot.IsValid() {
		return fmt.Errorf("%w: invalid time slot", ErrInvalidInput)
	}

	if nameLen := utf8.RuneCountInString(req.BookerName); nameLen < domain.MinBookerNameLength || nameLen > domain.MaxBookerNameLength {
		return fmt.Errorf("%w: booker name must be %d-%d characters",
			ErrInvalidInput, domain.MinBookerNameLength, domain.MaxBookerNameLength)
	}

	if !phonePattern.MatchString(req.PhoneNumber) {
		return fmt.Errorf("%w: phone number must be 5 digits (internal) or 9-10 digits", ErrInvalidInput)
	}

	if titleLen := utf8.RuneCountInString(req.MeetingTitle); titleLen < domain.MinMeetingTitleLength || titleLen > domain.MaxMeetingTitleLength {
		return fmt.Errorf("%w: meeting title must be %d-%d characters",
			ErrInvalidInput, domain.MinMeetingTitleLength, domain.MaxMeetingTitleLength)
	}

	if deptLen := utf8.RuneCountInString(req.Department); deptLen < domain.MinDepartmentLength || deptLen > domain.MaxDepartmentLength {
		return fmt.Errorf("%w: department must be %d-%d characters",
			ErrInvalidInput, domain.MinDepartmentLength, domain.MaxDepartmentLength)
	}

	if len(req.Dates) > domain.MaxBookingDates {
		return fmt.Errorf("%w: at most %d dates per booking", ErrInvalidInput, domain.MaxBookingDates)
	}

	// Заявка с пустым списком дат проходит дальше: валидатор черновика
	// вернёт по ней нарушение "no dates selected" в общем списке

	today := types.DateOf(now)
	for _, d := range req.Dates {
		if d.IsZero() {
			return fmt.Errorf("%w: empty date in request", ErrInvalidInput)
		}
		if d.Before(today) {
			return fmt.Errorf("%w: %s", ErrDateInPast, d)
		}
	}

	if req.NeedBreak {
		if req.BreakOrganizer == nil || *req.BreakOrganizer == "" {
			return fmt.Errorf("%w: break organizer is required when a break is requested", ErrInvalidInput)
		}
		if utf8.RuneCountInString(*req.BreakOrganizer) > domain.MaxBreakOrganizerLen {
			return fmt.Errorf("%w: break organizer must be at most %d characters",
				ErrInvalidInput, domain.MaxBreakOrganizerLen)
		}
	}

	if req.BreakDetails != nil && utf8.RuneCountInString(*req.BreakDetails) > domain.MaxBreakDetailsLength {
		return fmt.Errorf("%w: break details must be at most %d characters",
			ErrInvalidInput, domain.MaxBreakDetailsLength)
	}

	return nil
}

// validateDraft проверяет заявку по дням против снимка существующих
// бронирований комнаты. Проверка не останавливается на первом конфликте:
// пользователь получает полный список проблемных дат за один проход.
// Дубликаты дат не схлопываются — это ответственность вызывающей стороны.
func validateDraft(days []DayRequest, existing []*domain.Booking) []Violation {
	if len(days) == 0 {
		return []Violation{{Reason: "no dates selected"}}
	}

	violations := make([]Violation, 0)
	for _, day := range days {
		if !domain.IsSlotAvailable(day.Date, day.Slot, existing) {
			violations = append(violations, Violation{
				Date:   day.Date,
				Reason: fmt.Sprintf("slot %s unavailable on %s", day.Slot, day.Date),
			})
		}
	}

	return violations
}
