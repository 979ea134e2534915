package domain

import "fmt"

// TimeSlot represents the bookable unit of a room on a calendar date
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotFullDay   TimeSlot = "full_day"
)

// AllTimeSlots lists every slot value in display order
var AllTimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotFullDay}

// ParseTimeSlot converts a wire string into a TimeSlot
func ParseTimeSlot(s string) (TimeSlot, error) {
	switch TimeSlot(s) {
	case SlotMorning, SlotAfternoon, SlotFullDay:
		return TimeSlot(s), nil
	default:
		return "", fmt.Errorf("unknown time slot %q", s)
	}
}

// IsValid reports whether the slot is one of the three known values
func (s TimeSlot) IsValid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotFullDay:
		return true
	default:
		return false
	}
}

// OccupiesMorning returns true if the slot consumes the morning half-day
func (s TimeSlot) OccupiesMorning() bool {
	return s == SlotMorning || s == SlotFullDay
}

// OccupiesAfternoon returns true if the slot consumes the afternoon half-day
func (s TimeSlot) OccupiesAfternoon() bool {
	return s == SlotAfternoon || s == SlotFullDay
}

// ConflictsWith reports whether two slots on the same room and date collide.
// Slots conflict when their occupied half-days intersect: full_day collides
// with everything, morning and afternoon only with themselves and full_day.
func (s TimeSlot) ConflictsWith(other TimeSlot) bool {
	return (s.OccupiesMorning() && other.OccupiesMorning()) ||
		(s.OccupiesAfternoon() && other.OccupiesAfternoon())
}

// SortOrder returns the display ordering key (morning < afternoon < full_day)
func (s TimeSlot) SortOrder() int {
	switch s {
	case SlotMorning:
		return 1
	case SlotAfternoon:
		return 2
	case SlotFullDay:
		return 3
	default:
		return 4
	}
}
