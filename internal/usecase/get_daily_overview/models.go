package get_daily_overview

import (
	"time"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// Request запрос обзора дня
type Request struct {
	Date types.Date
}

// Meeting одна встреча в расписании дня
type Meeting struct {
	BookingID      int64                `json:"bookingId"`
	BookingCode    string               `json:"bookingCode"`
	TimeSlot       domain.TimeSlot      `json:"timeSlot"`
	RoomID         int64                `json:"roomId"`
	RoomName       string               `json:"roomName"`
	Capacity       int                  `json:"capacity"`
	MeetingTitle   string               `json:"meetingTitle"`
	BookerName     string               `json:"bookerName"`
	PhoneNumber    string               `json:"phoneNumber"`
	Department     string               `json:"department"`
	Status         domain.BookingStatus `json:"status"`
	NeedBreak      bool                 `json:"needBreak"`
	BreakDetails   *string              `json:"breakDetails,omitempty"`
	BreakOrganizer *string              `json:"breakOrganizer,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// Stats сводная статистика дня
type Stats struct {
	TotalMeetings    int `json:"totalMeetings"`
	RoomsInUse       int `json:"roomsInUse"`
	TotalRooms       int `json:"totalRooms"`
	TotalAttendees   int `json:"totalAttendees"`
	PendingApprovals int `json:"pendingApprovals"`
	BreakRequests    int `json:"breakRequests"`
}

// Response расписание и статистика на одну дату
type Response struct {
	Date     types.Date `json:"date"`
	Meetings []Meeting  `json:"meetings"`
	Stats    Stats      `json:"stats"`
}

func toMeeting(m domain.DailyMeeting) Meeting {
	return Meeting{
		BookingID:      m.BookingID,
		BookingCode:    m.BookingCode,
		TimeSlot:       m.TimeSlot,
		RoomID:         m.RoomID,
		RoomName:       m.RoomName,
		Capacity:       m.Capacity,
		MeetingTitle:   m.MeetingTitle,
		BookerName:     m.BookerName,
		PhoneNumber:    m.PhoneNumber,
		Department:     m.Department,
		Status:         m.Status,
		NeedBreak:      m.NeedBreak,
		BreakDetails:   m.BreakDetails,
		BreakOrganizer: m.BreakOrganizer,
		CreatedAt:      m.CreatedAt,
	}
}

func toStats(s domain.DailyStats) Stats {
	return Stats{
		TotalMeetings:    s.TotalMeetings,
		RoomsInUse:       s.RoomsInUse,
		TotalRooms:       s.TotalRooms,
		TotalAttendees:   s.TotalAttendees,
		PendingApprovals: s.PendingApprovals,
		BreakRequests:    s.BreakRequests,
	}
}
