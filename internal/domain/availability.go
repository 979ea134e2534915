package domain

import "github.com/apiarm/MRB-BookingService/pkg/types"

// DayStatus classifies a room's overall availability on one calendar date
type DayStatus string

const (
	DayAvailable DayStatus = "available" // no slot occupied
	DayPartial   DayStatus = "partial"   // exactly one half-day occupied
	DayFull      DayStatus = "full"      // full_day booked, or both half-days taken
)

// OccupiedSlots returns the declared slot values of the bookings occupying the
// given date. Only pending and approved bookings count; rejected and cancelled
// ones are ignored. The result keeps the declared values ({morning}, not the
// expanded half-day occupancy) in display order, without duplicates.
func OccupiedSlots(date types.Date, bookings []*Booking) []TimeSlot {
	var hasMorning, hasAfternoon, hasFullDay bool

	for _, b := range bookings {
		if !b.CountsTowardOccupancy() || !b.OccupiesDate(date) {
			continue
		}
		switch b.TimeSlot {
		case SlotMorning:
			hasMorning = true
		case SlotAfternoon:
			hasAfternoon = true
		case SlotFullDay:
			hasFullDay = true
		}
	}

	occupied := make([]TimeSlot, 0, 3)
	if hasMorning {
		occupied = append(occupied, SlotMorning)
	}
	if hasAfternoon {
		occupied = append(occupied, SlotAfternoon)
	}
	if hasFullDay {
		occupied = append(occupied, SlotFullDay)
	}
	return occupied
}

// AvailableSlots returns the slots still bookable on the given date, in
// display order. A full_day occupant blocks everything; when both half-days
// are taken by separate bookings there is no room for full_day either.
func AvailableSlots(date types.Date, bookings []*Booking) []TimeSlot {
	occupied := OccupiedSlots(date, bookings)

	if len(occupied) == 0 {
		return []TimeSlot{SlotMorning, SlotAfternoon, SlotFullDay}
	}

	var hasMorning, hasAfternoon bool
	for _, s := range occupied {
		switch s {
		case SlotFullDay:
			return []TimeSlot{}
		case SlotMorning:
			hasMorning = true
		case SlotAfternoon:
			hasAfternoon = true
		}
	}

	available := make([]TimeSlot, 0, 3)
	if !hasMorning {
		available = append(available, SlotMorning)
	}
	if !hasAfternoon {
		available = append(available, SlotAfternoon)
	}
	if !hasMorning && !hasAfternoon {
		available = append(available, SlotFullDay)
	}
	return available
}

// IsSlotAvailable reports whether the given slot can still be booked on the
// date. Equivalent to membership in AvailableSlots, computed directly since
// the check runs per calendar cell in the UI.
func IsSlotAvailable(date types.Date, slot TimeSlot, bookings []*Booking) bool {
	for _, b := range bookings {
		if !b.CountsTowardOccupancy() || !b.OccupiesDate(date) {
			continue
		}
		if slot.ConflictsWith(b.TimeSlot) {
			return false
		}
	}
	return true
}

// DayAvailability classifies the date for calendar coloring. Consistent with
// AvailableSlots: DayFull implies an empty slot list, DayAvailable implies all
// three slots are offered.
func DayAvailability(date types.Date, bookings []*Booking) DayStatus {
	occupied := OccupiedSlots(date, bookings)
	if len(occupied) == 0 {
		return DayAvailable
	}

	var hasMorning, hasAfternoon bool
	for _, s := range occupied {
		switch s {
		case SlotFullDay:
			return DayFull
		case SlotMorning:
			hasMorning = true
		case SlotAfternoon:
			hasAfternoon = true
		}
	}

	if hasMorning && hasAfternoon {
		return DayFull
	}
	return DayPartial
}
