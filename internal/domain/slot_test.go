package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotConflictsWith(t *testing.T) {
	tests := []struct {
		a, b TimeSlot
		want bool
	}{
		{SlotMorning, SlotMorning, true},
		{SlotMorning, SlotAfternoon, false},
		{SlotMorning, SlotFullDay, true},
		{SlotAfternoon, SlotMorning, false},
		{SlotAfternoon, SlotAfternoon, true},
		{SlotAfternoon, SlotFullDay, true},
		{SlotFullDay, SlotMorning, true},
		{SlotFullDay, SlotAfternoon, true},
		{SlotFullDay, SlotFullDay, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.ConflictsWith(tt.b), "%s vs %s", tt.a, tt.b)
		// Conflict is symmetric
		assert.Equal(t, tt.want, tt.b.ConflictsWith(tt.a), "%s vs %s reversed", tt.b, tt.a)
	}
}

func TestTimeSlotOccupancy(t *testing.T) {
	assert.True(t, SlotMorning.OccupiesMorning())
	assert.False(t, SlotMorning.OccupiesAfternoon())

	assert.False(t, SlotAfternoon.OccupiesMorning())
	assert.True(t, SlotAfternoon.OccupiesAfternoon())

	assert.True(t, SlotFullDay.OccupiesMorning())
	assert.True(t, SlotFullDay.OccupiesAfternoon())
}

func TestParseTimeSlot(t *testing.T) {
	for _, s := range AllTimeSlots {
		parsed, err := ParseTimeSlot(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseTimeSlot("evening")
	assert.Error(t, err)

	_, err = ParseTimeSlot("")
	assert.Error(t, err)
}

func TestSortOrder(t *testing.T) {
	assert.Less(t, SlotMorning.SortOrder(), SlotAfternoon.SortOrder())
	assert.Less(t, SlotAfternoon.SortOrder(), SlotFullDay.SortOrder())
}
