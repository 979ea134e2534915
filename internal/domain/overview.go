package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// DailyMeeting is a projection of one booking onto one concrete calendar date,
// with room name and capacity denormalized for display
type DailyMeeting struct {
	BookingID    int64
	BookingCode  string
	TimeSlot     TimeSlot
	RoomID       int64
	RoomName     string
	Capacity     int
	MeetingTitle string
	BookerName   string
	PhoneNumber  string
	Department   string
	Status       BookingStatus

	NeedBreak      bool
	BreakDetails   *string
	BreakOrganizer *string

	CreatedAt time.Time
}

// DailyStats derived cross-room statistics for one calendar date
type DailyStats struct {
	TotalMeetings    int
	RoomsInUse       int
	TotalRooms       int
	TotalAttendees   int
	PendingApprovals int
	BreakRequests    int
}

// ProjectToDate builds the daily-overview meeting list for one date. Unlike
// availability, the projection is status-blind: history and administration
// views show rejected and cancelled bookings too. A booking whose room is
// missing from rooms gets a placeholder name and zero capacity; the join
// never fails. The result is sorted by slot order, then room name.
func ProjectToDate(bookings []*Booking, rooms []*Room, date types.Date) []DailyMeeting {
	roomsByID := make(map[int64]*Room, len(rooms))
	for _, r := range rooms {
		roomsByID[r.ID] = r
	}

	meetings := make([]DailyMeeting, 0)
	for _, b := range bookings {
		if !b.OccupiesDate(date) {
			continue
		}

		m := DailyMeeting{
			BookingID:      b.ID,
			BookingCode:    b.BookingCode,
			TimeSlot:       b.TimeSlot,
			RoomID:         b.RoomID,
			RoomName:       fmt.Sprintf("Room %d", b.RoomID),
			MeetingTitle:   b.MeetingTitle,
			BookerName:     b.BookerName,
			PhoneNumber:    b.PhoneNumber,
			Department:     b.Department,
			Status:         b.Status,
			NeedBreak:      b.NeedBreak,
			BreakDetails:   b.BreakDetails,
			BreakOrganizer: b.BreakOrganizer,
			CreatedAt:      b.CreatedAt,
		}
		if room, ok := roomsByID[b.RoomID]; ok {
			m.RoomName = room.RoomName
			m.Capacity = room.Capacity
		}
		meetings = append(meetings, m)
	}

	sort.SliceStable(meetings, func(i, j int) bool {
		if meetings[i].TimeSlot.SortOrder() != meetings[j].TimeSlot.SortOrder() {
			return meetings[i].TimeSlot.SortOrder() < meetings[j].TimeSlot.SortOrder()
		}
		return meetings[i].RoomName < meetings[j].RoomName
	})

	return meetings
}

// ComputeStats derives the daily statistics card from a meeting list.
// totalActiveRooms is supplied by the caller, not derived from the meetings.
// TotalAttendees sums room capacity, not actual headcount — the system does
// not collect attendee counts, so capacity is the documented approximation.
func ComputeStats(meetings []DailyMeeting, totalActiveRooms int) DailyStats {
	stats := DailyStats{
		TotalMeetings: len(meetings),
		TotalRooms:    totalActiveRooms,
	}

	roomsInUse := make(map[int64]struct{})
	for _, m := range meetings {
		roomsInUse[m.RoomID] = struct{}{}
		stats.TotalAttendees += m.Capacity
		if m.Status == StatusPending {
			stats.PendingApprovals++
		}
		if m.NeedBreak {
			stats.BreakRequests++
		}
	}
	stats.RoomsInUse = len(roomsInUse)

	return stats
}
