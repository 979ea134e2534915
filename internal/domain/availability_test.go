package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/apiarm/MRB-BookingService/pkg/types"
)

func date(day int) types.Date {
	return types.NewDate(2025, time.November, day)
}

func booking(roomID int64, slot TimeSlot, status BookingStatus, dates ...types.Date) *Booking {
	return &Booking{
		RoomID:   roomID,
		Dates:    dates,
		TimeSlot: slot,
		Status:   status,
	}
}

func TestOccupiedSlots(t *testing.T) {
	d := date(10)

	tests := []struct {
		name     string
		bookings []*Booking
		want     []TimeSlot
	}{
		{
			name:     "no bookings",
			bookings: nil,
			want:     []TimeSlot{},
		},
		{
			name: "single approved morning",
			bookings: []*Booking{
				booking(1, SlotMorning, StatusApproved, d),
			},
			want: []TimeSlot{SlotMorning},
		},
		{
			name: "pending bookings count too",
			bookings: []*Booking{
				booking(1, SlotAfternoon, StatusPending, d),
			},
			want: []TimeSlot{SlotAfternoon},
		},
		{
			name: "rejected and cancelled are invisible",
			bookings: []*Booking{
				booking(1, SlotFullDay, StatusRejected, d),
				booking(1, SlotMorning, StatusCancelled, d),
			},
			want: []TimeSlot{},
		},
		{
			name: "other dates do not leak in",
			bookings: []*Booking{
				booking(1, SlotFullDay, StatusApproved, date(11)),
			},
			want: []TimeSlot{},
		},
		{
			name: "multi-date booking occupies every covered date",
			bookings: []*Booking{
				booking(1, SlotMorning, StatusApproved, date(9), d, date(11)),
			},
			want: []TimeSlot{SlotMorning},
		},
		{
			name: "declared values are not expanded and not duplicated",
			bookings: []*Booking{
				booking(1, SlotMorning, StatusApproved, d),
				booking(1, SlotMorning, StatusPending, d),
				booking(1, SlotAfternoon, StatusApproved, d),
			},
			want: []TimeSlot{SlotMorning, SlotAfternoon},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OccupiedSlots(d, tt.bookings))
		})
	}
}

func TestAvailableSlots(t *testing.T) {
	d := date(10)

	tests := []struct {
		name     string
		bookings []*Booking
		want     []TimeSlot
	}{
		{
			name:     "empty date offers all three slots",
			bookings: nil,
			want:     []TimeSlot{SlotMorning, SlotAfternoon, SlotFullDay},
		},
		{
			name: "full_day blocks everything",
			bookings: []*Booking{
				booking(1, SlotFullDay, StatusApproved, d),
			},
			want: []TimeSlot{},
		},
		{
			name: "morning taken leaves only afternoon",
			bookings: []*Booking{
				booking(1, SlotMorning, StatusApproved, d),
			},
			want: []TimeSlot{SlotAfternoon},
		},
		{
			name: "afternoon taken leaves only morning",
			bookings: []*Booking{
				booking(1, SlotAfternoon, StatusPending, d),
			},
			want: []TimeSlot{SlotMorning},
		},
		{
			name: "both halves taken by separate bookings blocks full_day too",
			bookings: []*Booking{
				booking(1, SlotMorning, StatusApproved, d),
				booking(2, SlotAfternoon, StatusApproved, d),
			},
			want: []TimeSlot{},
		},
		{
			name: "rejected full_day booking means fully available",
			bookings: []*Booking{
				booking(1, SlotFullDay, StatusRejected, d),
			},
			want: []TimeSlot{SlotMorning, SlotAfternoon, SlotFullDay},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableSlots(d, tt.bookings))
		})
	}
}

// IsSlotAvailable must behave exactly as membership in AvailableSlots
func TestIsSlotAvailableMatchesAvailableSlots(t *testing.T) {
	d := date(10)

	scenarios := [][]*Booking{
		nil,
		{booking(1, SlotMorning, StatusApproved, d)},
		{booking(1, SlotAfternoon, StatusApproved, d)},
		{booking(1, SlotFullDay, StatusApproved, d)},
		{booking(1, SlotMorning, StatusApproved, d), booking(2, SlotAfternoon, StatusPending, d)},
		{booking(1, SlotFullDay, StatusCancelled, d)},
	}

	for _, bookings := range scenarios {
		available := AvailableSlots(d, bookings)
		inList := make(map[TimeSlot]bool, len(available))
		for _, s := range available {
			inList[s] = true
		}

		for _, slot := range AllTimeSlots {
			assert.Equal(t, inList[slot], IsSlotAvailable(d, slot, bookings),
				"slot %s, %d bookings", slot, len(bookings))
		}
	}
}

func TestDayAvailability(t *testing.T) {
	d := date(10)

	tests := []struct {
		name     string
		bookings []*Booking
		want     DayStatus
	}{
		{
			name:     "no bookings",
			bookings: nil,
			want:     DayAvailable,
		},
		{
			name: "full_day booked",
			bookings: []*Booking{
				booking(1, SlotFullDay, StatusApproved, d),
			},
			want: DayFull,
		},
		{
			name: "only morning booked",
			bookings: []*Booking{
				booking(1, SlotMorning, StatusApproved, d),
			},
			want: DayPartial,
		},
		{
			name: "only afternoon booked",
			bookings: []*Booking{
				booking(1, SlotAfternoon, StatusPending, d),
			},
			want: DayPartial,
		},
		{
			name: "both halves booked separately is full",
			bookings: []*Booking{
				booking(1, SlotMorning, StatusApproved, d),
				booking(2, SlotAfternoon, StatusApproved, d),
			},
			want: DayFull,
		},
		{
			name: "final statuses do not count",
			bookings: []*Booking{
				booking(1, SlotFullDay, StatusRejected, d),
				booking(2, SlotMorning, StatusCancelled, d),
			},
			want: DayAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayAvailability(d, tt.bookings))
		})
	}
}

// DayAvailability must agree with AvailableSlots: full means no slot offered,
// available means all three offered.
func TestDayAvailabilityAgreesWithAvailableSlots(t *testing.T) {
	d := date(10)

	scenarios := [][]*Booking{
		nil,
		{booking(1, SlotMorning, StatusApproved, d)},
		{booking(1, SlotAfternoon, StatusApproved, d)},
		{booking(1, SlotFullDay, StatusPending, d)},
		{booking(1, SlotMorning, StatusApproved, d), booking(2, SlotAfternoon, StatusApproved, d)},
		{booking(1, SlotMorning, StatusRejected, d)},
	}

	for _, bookings := range scenarios {
		status := DayAvailability(d, bookings)
		available := AvailableSlots(d, bookings)

		switch status {
		case DayFull:
			assert.Empty(t, available)
		case DayAvailable:
			assert.Len(t, available, 3)
		case DayPartial:
			assert.NotEmpty(t, available)
			assert.Less(t, len(available), 3)
		}
	}
}

// Pure functions: identical inputs must yield identical outputs with no
// mutation of the snapshot.
func TestAvailabilityIsIdempotent(t *testing.T) {
	d := date(10)
	bookings := []*Booking{
		booking(1, SlotMorning, StatusApproved, d),
		booking(2, SlotAfternoon, StatusRejected, d),
	}

	first := AvailableSlots(d, bookings)
	second := AvailableSlots(d, bookings)
	assert.Equal(t, first, second)

	assert.Equal(t, OccupiedSlots(d, bookings), OccupiedSlots(d, bookings))
	assert.Equal(t, DayAvailability(d, bookings), DayAvailability(d, bookings))

	// Snapshot untouched
	assert.Equal(t, StatusApproved, bookings[0].Status)
	assert.Equal(t, SlotAfternoon, bookings[1].TimeSlot)
}

// Scenario from the acceptance checklist: room with one approved morning
// booking on date D.
func TestSingleMorningBookingScenario(t *testing.T) {
	d := date(15)
	bookings := []*Booking{
		booking(7, SlotMorning, StatusApproved, d),
	}

	assert.Equal(t, []TimeSlot{SlotMorning}, OccupiedSlots(d, bookings))
	assert.Equal(t, []TimeSlot{SlotAfternoon}, AvailableSlots(d, bookings))
	assert.False(t, IsSlotAvailable(d, SlotFullDay, bookings))
	assert.True(t, IsSlotAvailable(d, SlotAfternoon, bookings))
	assert.Equal(t, DayPartial, DayAvailability(d, bookings))
}
