package get_daily_overview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

type stubBookingRepo struct {
	bookings  []*domain.Booking
	gotFilter domain.BookingsFilter
}

func (s *stubBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.gotFilter = filter
	return s.bookings, nil
}

type stubRoomRepo struct {
	rooms       []*domain.Room
	activeCount int
}

func (s *stubRoomRepo) List(_ context.Context, _ bool) ([]*domain.Room, error) {
	return s.rooms, nil
}

func (s *stubRoomRepo) CountActive(_ context.Context) (int, error) {
	return s.activeCount, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecuteDailyOverview(t *testing.T) {
	date := types.NewDate(2025, time.December, 3)

	bookings := &stubBookingRepo{
		bookings: []*domain.Booking{
			{
				ID: 1, BookingCode: "BK-AAAA0001", RoomID: 1,
				Dates: []types.Date{date}, TimeSlot: domain.SlotAfternoon,
				Status: domain.StatusApproved, MeetingTitle: "Design review",
			},
			{
				ID: 2, BookingCode: "BK-AAAA0002", RoomID: 2,
				Dates: []types.Date{date}, TimeSlot: domain.SlotMorning,
				Status: domain.StatusPending, MeetingTitle: "Standup", NeedBreak: true,
			},
		},
	}
	rooms := &stubRoomRepo{
		rooms: []*domain.Room{
			{ID: 1, RoomName: "Boardroom A", Capacity: 12, IsActive: true},
			{ID: 2, RoomName: "Huddle", Capacity: 4, IsActive: true},
		},
		activeCount: 5,
	}

	uc := NewUseCase(bookings, rooms, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	// final statuses are part of the day view
	assert.True(t, bookings.gotFilter.IncludeFinal)
	require.NotNil(t, bookings.gotFilter.Date)

	require.Len(t, resp.Meetings, 2)
	// morning sorts before afternoon
	assert.Equal(t, "Standup", resp.Meetings[0].MeetingTitle)
	assert.Equal(t, "Huddle", resp.Meetings[0].RoomName)
	assert.Equal(t, "Design review", resp.Meetings[1].MeetingTitle)

	assert.Equal(t, 2, resp.Stats.TotalMeetings)
	assert.Equal(t, 2, resp.Stats.RoomsInUse)
	assert.Equal(t, 5, resp.Stats.TotalRooms)
	assert.Equal(t, 16, resp.Stats.TotalAttendees)
	assert.Equal(t, 1, resp.Stats.PendingApprovals)
	assert.Equal(t, 1, resp.Stats.BreakRequests)
}

func TestExecuteEmptyDay(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubRoomRepo{activeCount: 3}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: types.NewDate(2025, time.December, 4)})
	require.NoError(t, err)

	assert.Empty(t, resp.Meetings)
	assert.Equal(t, 0, resp.Stats.TotalMeetings)
	assert.Equal(t, 3, resp.Stats.TotalRooms)
}

func TestExecuteDateRequired(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubRoomRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
