package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	roomRepo "github.com/apiarm/MRB-BookingService/internal/infra/storage/room"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

type stubBookingRepo struct {
	existing  []*domain.Booking
	listErr   error
	createErr error
	created   *domain.Booking
}

func (s *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	b := *booking
	b.ID = 42
	b.CreatedAt = time.Date(2025, time.October, 10, 9, 0, 0, 0, time.UTC)
	s.created = &b
	return &b, nil
}

func (s *stubBookingRepo) ListByRoomAndDates(_ context.Context, _ int64, _ []types.Date) ([]*domain.Booking, error) {
	return s.existing, s.listErr
}

type stubRoomRepo struct {
	room *domain.Room
	err  error
}

func (s *stubRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return s.room, s.err
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubNotifier struct {
	calls int
	err   error
}

func (s *stubNotifier) BookingCreated(_ *domain.Booking, _ string) error {
	s.calls++
	return s.err
}

type stubTime struct{ now time.Time }

func (s stubTime) Now() time.Time { return s.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeRoom() *domain.Room {
	return &domain.Room{ID: 1, RoomName: "Boardroom A", Capacity: 12, IsActive: true}
}

func newTestUseCase(bookings *stubBookingRepo, rooms *stubRoomRepo, notifier *stubNotifier) *UseCase {
	uc := NewUseCase(bookings, rooms, stubTxManager{}, notifier, nopLogger{})
	uc.timeProvider = stubTime{now: time.Date(2025, time.October, 1, 8, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecuteCreatesPendingBooking(t *testing.T) {
	bookings := &stubBookingRepo{}
	notifier := &stubNotifier{}
	uc := newTestUseCase(bookings, &stubRoomRepo{room: activeRoom()}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.EqualValues(t, 42, resp.ID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Regexp(t, `^BK-[0-9A-F]{8}$`, resp.BookingCode)
	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
	assert.Equal(t, 1, notifier.calls)
}

func TestExecuteRoomNotFound(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubRoomRepo{err: roomRepo.ErrRoomNotFound}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecuteRoomInactive(t *testing.T) {
	room := activeRoom()
	room.IsActive = false
	uc := newTestUseCase(&stubBookingRepo{}, &stubRoomRepo{room: room}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomInactive)
}

func TestExecuteSlotConflict(t *testing.T) {
	bookings := &stubBookingRepo{
		existing: []*domain.Booking{occupying(domain.SlotFullDay, day(20))},
	}
	notifier := &stubNotifier{}
	uc := newTestUseCase(bookings, &stubRoomRepo{room: activeRoom()}, notifier)

	_, err := uc.Execute(context.Background(), validRequest())

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Violations, 1)
	assert.True(t, conflict.Violations[0].Date.Equal(day(20)))
	assert.Nil(t, bookings.created)
	assert.Zero(t, notifier.calls)
}

func TestExecuteEmptyDatesRejected(t *testing.T) {
	req := validRequest()
	req.Dates = nil
	uc := newTestUseCase(&stubBookingRepo{}, &stubRoomRepo{room: activeRoom()}, nil)

	_, err := uc.Execute(context.Background(), req)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Violations, 1)
	assert.Equal(t, "no dates selected", conflict.Violations[0].Reason)
}

func TestExecuteRepositoryFailure(t *testing.T) {
	bookings := &stubBookingRepo{createErr: errors.New("connection reset")}
	uc := newTestUseCase(bookings, &stubRoomRepo{room: activeRoom()}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteNotificationFailureDoesNotFailBooking(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("telegram unreachable")}
	uc := newTestUseCase(&stubBookingRepo{}, &stubRoomRepo{room: activeRoom()}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 1, notifier.calls)
}
