package get_room_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	roomRepo "github.com/apiarm/MRB-BookingService/internal/infra/storage/room"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
	gotDates []types.Date
}

func (s *stubBookingRepo) ListByRoomAndDates(_ context.Context, _ int64, dates []types.Date) ([]*domain.Booking, error) {
	s.gotDates = dates
	return s.bookings, nil
}

type stubRoomRepo struct {
	room *domain.Room
	err  error
}

func (s *stubRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return s.room, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) types.Date {
	return types.NewDate(2025, time.November, d)
}

func TestExecuteBuildsCalendar(t *testing.T) {
	bookings := &stubBookingRepo{
		bookings: []*domain.Booking{
			{RoomID: 3, Dates: []types.Date{day(1)}, TimeSlot: domain.SlotMorning, Status: domain.StatusApproved},
			{RoomID: 3, Dates: []types.Date{day(2)}, TimeSlot: domain.SlotFullDay, Status: domain.StatusPending},
		},
	}
	rooms := &stubRoomRepo{room: &domain.Room{ID: 3, RoomName: "Boardroom A", IsActive: true}}
	uc := NewUseCase(bookings, rooms, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 3, From: day(1), To: day(3)})
	require.NoError(t, err)

	assert.Equal(t, "Boardroom A", resp.RoomName)
	require.Len(t, resp.Days, 3)
	assert.Len(t, bookings.gotDates, 3)

	assert.Equal(t, domain.DayPartial, resp.Days[0].Status)
	assert.Equal(t, []domain.TimeSlot{domain.SlotMorning}, resp.Days[0].OccupiedSlots)
	assert.Equal(t, []domain.TimeSlot{domain.SlotAfternoon}, resp.Days[0].AvailableSlots)

	assert.Equal(t, domain.DayFull, resp.Days[1].Status)
	assert.Empty(t, resp.Days[1].AvailableSlots)

	assert.Equal(t, domain.DayAvailable, resp.Days[2].Status)
	assert.Equal(t, domain.AllTimeSlots, resp.Days[2].AvailableSlots)
}

func TestExecuteSingleDayRange(t *testing.T) {
	rooms := &stubRoomRepo{room: &domain.Room{ID: 3, RoomName: "Boardroom A"}}
	uc := NewUseCase(&stubBookingRepo{}, rooms, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 3, From: day(5), To: day(5)})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.True(t, resp.Days[0].Date.Equal(day(5)))
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubRoomRepo{}, nopLogger{})

	t.Run("invalid room id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{RoomID: 0, From: day(1), To: day(2)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing dates", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{RoomID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("reversed range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{RoomID: 1, From: day(5), To: day(1)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("range too large", func(t *testing.T) {
		from := day(1)
		_, err := uc.Execute(context.Background(), &Request{
			RoomID: 1,
			From:   from,
			To:     from.AddDays(domain.MaxAvailabilityRangeDays),
		})
		assert.ErrorIs(t, err, ErrRangeTooLarge)
	})
}

func TestExecuteRoomNotFound(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubRoomRepo{err: roomRepo.ErrRoomNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 9, From: day(1), To: day(2)})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
