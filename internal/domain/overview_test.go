package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiarm/MRB-BookingService/pkg/ptr"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

func room(id int64, name string, capacity int) *Room {
	return &Room{ID: id, RoomName: name, Capacity: capacity, IsActive: true}
}

func TestProjectToDate(t *testing.T) {
	d := types.NewDate(2025, time.December, 3)
	other := types.NewDate(2025, time.December, 4)

	rooms := []*Room{
		room(1, "Boardroom", 20),
		room(2, "Annex", 10),
	}

	t.Run("filters by date regardless of status", func(t *testing.T) {
		bookings := []*Booking{
			booking(1, SlotMorning, StatusApproved, d),
			booking(2, SlotAfternoon, StatusRejected, d),
			booking(1, SlotFullDay, StatusCancelled, other),
		}

		meetings := ProjectToDate(bookings, rooms, d)
		require.Len(t, meetings, 2)
		assert.Equal(t, StatusApproved, meetings[0].Status)
		assert.Equal(t, StatusRejected, meetings[1].Status)
	})

	t.Run("joins room name and capacity", func(t *testing.T) {
		bookings := []*Booking{
			booking(2, SlotMorning, StatusApproved, d),
		}

		meetings := ProjectToDate(bookings, rooms, d)
		require.Len(t, meetings, 1)
		assert.Equal(t, "Annex", meetings[0].RoomName)
		assert.Equal(t, 10, meetings[0].Capacity)
	})

	t.Run("missing room degrades to placeholder", func(t *testing.T) {
		bookings := []*Booking{
			booking(99, SlotMorning, StatusApproved, d),
		}

		meetings := ProjectToDate(bookings, rooms, d)
		require.Len(t, meetings, 1)
		assert.Equal(t, "Room 99", meetings[0].RoomName)
		assert.Equal(t, 0, meetings[0].Capacity)
	})

	t.Run("sorted by slot order then room name", func(t *testing.T) {
		bookings := []*Booking{
			booking(1, SlotFullDay, StatusApproved, d),
			booking(1, SlotMorning, StatusApproved, d),
			booking(2, SlotMorning, StatusApproved, d),
			booking(2, SlotAfternoon, StatusPending, d),
		}

		meetings := ProjectToDate(bookings, rooms, d)
		require.Len(t, meetings, 4)
		// morning: Annex before Boardroom; then afternoon; then full_day
		assert.Equal(t, SlotMorning, meetings[0].TimeSlot)
		assert.Equal(t, "Annex", meetings[0].RoomName)
		assert.Equal(t, SlotMorning, meetings[1].TimeSlot)
		assert.Equal(t, "Boardroom", meetings[1].RoomName)
		assert.Equal(t, SlotAfternoon, meetings[2].TimeSlot)
		assert.Equal(t, SlotFullDay, meetings[3].TimeSlot)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, ProjectToDate(nil, rooms, d))
	})
}

func TestComputeStats(t *testing.T) {
	meetings := []DailyMeeting{
		{RoomID: 1, Capacity: 10, Status: StatusApproved},
		{RoomID: 1, Capacity: 10, Status: StatusPending},
		{RoomID: 2, Capacity: 20, Status: StatusApproved, NeedBreak: true, BreakOrganizer: ptr.Ptr("Facilities")},
	}

	stats := ComputeStats(meetings, 5)

	assert.Equal(t, 3, stats.TotalMeetings)
	assert.Equal(t, 2, stats.RoomsInUse)
	assert.Equal(t, 5, stats.TotalRooms)
	assert.Equal(t, 40, stats.TotalAttendees)
	assert.Equal(t, 1, stats.PendingApprovals)
	assert.Equal(t, 1, stats.BreakRequests)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, 3)

	assert.Equal(t, DailyStats{TotalRooms: 3}, stats)
}

func TestComputeStatsMissingCapacityContributesZero(t *testing.T) {
	meetings := []DailyMeeting{
		{RoomID: 9, Capacity: 0, Status: StatusApproved},
		{RoomID: 1, Capacity: 15, Status: StatusApproved},
	}

	stats := ComputeStats(meetings, 2)
	assert.Equal(t, 15, stats.TotalAttendees)
}
