package domain

import (
	"fmt"
	"time"

	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// OccupyingStatuses статусы, которые занимают слот
// Используется при подсчёте занятости комнаты
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// FinalStatuses статусы, которые не занимают слот и не меняются
var FinalStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
}

// ParseBookingStatus converts a wire string into a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// Booking represents a meeting-room booking request.
// A single booking may span several calendar dates; it occupies the same
// time slot on every one of them.
type Booking struct {
	ID           int64
	BookingCode  string
	RoomID       int64
	Dates        []types.Date
	TimeSlot     TimeSlot
	Status       BookingStatus
	BookerName   string
	PhoneNumber  string
	MeetingTitle string
	Department   string

	// Break service request (coffee break during the meeting)
	NeedBreak      bool
	BreakDetails   *string
	BreakOrganizer *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsTowardOccupancy returns true if the booking blocks its slot.
// Rejected and cancelled bookings are invisible to availability.
func (b *Booking) CountsTowardOccupancy() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsFinal returns true if the booking reached a terminal status
func (b *Booking) IsFinal() bool {
	return b.Status == StatusRejected || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// CanBeUpdated returns true if the booking can still be edited
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// CanBeReviewed returns true if an admin can approve or reject the booking
func (b *Booking) CanBeReviewed() bool {
	return b.Status == StatusPending
}

// OccupiesDate reports whether the booking covers the given calendar day
func (b *Booking) OccupiesDate(date types.Date) bool {
	for _, d := range b.Dates {
		if d.Equal(date) {
			return true
		}
	}
	return false
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	RoomID       *int64         // Фильтр по комнате (опционально)
	Status       *BookingStatus // Фильтр по статусу (опционально)
	Date         *types.Date    // Бронирования, покрывающие конкретную дату (опционально)
	IncludeFinal bool           // Включать ли rejected/cancelled в выборку
}
