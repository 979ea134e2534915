package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	bookingRepo "github.com/apiarm/MRB-BookingService/internal/infra/storage/booking"
	"github.com/apiarm/MRB-BookingService/internal/service/bookings/models"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

type stubBookingRepo struct {
	byID     map[int64]*domain.Booking
	existing []*domain.Booking

	updated       *domain.Booking
	statusUpdates map[int64]domain.BookingStatus
	deleted       []int64
}

func newStubBookingRepo(bookings ...*domain.Booking) *stubBookingRepo {
	byID := make(map[int64]*domain.Booking)
	for _, b := range bookings {
		byID[b.ID] = b
	}
	return &stubBookingRepo{byID: byID, statusUpdates: make(map[int64]domain.BookingStatus)}
}

func (s *stubBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *stubBookingRepo) GetByCode(_ context.Context, code string) (*domain.Booking, error) {
	for _, b := range s.byID {
		if b.BookingCode == code {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *stubBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(s.byID))
	for _, b := range s.byID {
		out = append(out, b)
	}
	return out, nil
}

func (s *stubBookingRepo) ListByRoomAndDates(_ context.Context, _ int64, _ []types.Date) ([]*domain.Booking, error) {
	return s.existing, nil
}

func (s *stubBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	s.updated = booking
	return nil
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	s.statusUpdates[id] = status
	return nil
}

func (s *stubBookingRepo) Delete(_ context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubHistoryRepo struct {
	records []*domain.HistoryRecord
}

func (s *stubHistoryRepo) Create(_ context.Context, record *domain.HistoryRecord) (*domain.HistoryRecord, error) {
	s.records = append(s.records, record)
	return record, nil
}

type stubTxManager struct{}

func (stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubNotifier struct {
	actions []domain.HistoryAction
}

func (s *stubNotifier) BookingReviewed(_ *domain.Booking, action domain.HistoryAction, _ int64) error {
	s.actions = append(s.actions, action)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) types.Date {
	return types.NewDate(2026, time.January, d)
}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		BookingCode: "BK-00000001",
		RoomID:      1,
		Dates:       []types.Date{day(10)},
		TimeSlot:    domain.SlotMorning,
		Status:      domain.StatusPending,
		BookerName:  "Somchai P.",
	}
}

func newTestService(repo *stubBookingRepo, history *stubHistoryRepo, notifier Notifier) *Service {
	return NewService(repo, history, stubTxManager{}, notifier, nopLogger{})
}

func TestApprovePendingBooking(t *testing.T) {
	repo := newStubBookingRepo(pendingBooking(1))
	history := &stubHistoryRepo{}
	notifier := &stubNotifier{}
	svc := newTestService(repo, history, notifier)

	require.NoError(t, svc.Approve(context.Background(), 1, 77))

	assert.Equal(t, domain.StatusApproved, repo.statusUpdates[1])
	require.Len(t, history.records, 1)
	assert.Equal(t, domain.ActionApproved, history.records[0].Action)
	assert.EqualValues(t, 77, history.records[0].AdminID)
	assert.Equal(t, []domain.HistoryAction{domain.ActionApproved}, notifier.actions)
}

func TestRejectRecordsReason(t *testing.T) {
	repo := newStubBookingRepo(pendingBooking(1))
	history := &stubHistoryRepo{}
	svc := newTestService(repo, history, nil)

	reason := "room reserved for maintenance"
	require.NoError(t, svc.Reject(context.Background(), 1, 77, &reason))

	assert.Equal(t, domain.StatusRejected, repo.statusUpdates[1])
	require.Len(t, history.records, 1)
	require.NotNil(t, history.records[0].Reason)
	assert.Equal(t, reason, *history.records[0].Reason)
}

func TestReviewAlreadyDecided(t *testing.T) {
	approved := pendingBooking(1)
	approved.Status = domain.StatusApproved
	repo := newStubBookingRepo(approved)
	svc := newTestService(repo, &stubHistoryRepo{}, nil)

	assert.ErrorIs(t, svc.Approve(context.Background(), 1, 77), ErrAlreadyReviewed)
	assert.ErrorIs(t, svc.Reject(context.Background(), 1, 77, nil), ErrAlreadyReviewed)
	assert.Empty(t, repo.statusUpdates)
}

func TestCancelApprovedBooking(t *testing.T) {
	approved := pendingBooking(2)
	approved.Status = domain.StatusApproved
	repo := newStubBookingRepo(approved)
	history := &stubHistoryRepo{}
	svc := newTestService(repo, history, nil)

	require.NoError(t, svc.Cancel(context.Background(), 2, 77))

	assert.Equal(t, domain.StatusCancelled, repo.statusUpdates[2])
	require.Len(t, history.records, 1)
	assert.Equal(t, domain.ActionCancelled, history.records[0].Action)
}

func TestCancelRejectedBookingFails(t *testing.T) {
	rejected := pendingBooking(3)
	rejected.Status = domain.StatusRejected
	svc := newTestService(newStubBookingRepo(rejected), &stubHistoryRepo{}, nil)

	assert.ErrorIs(t, svc.Cancel(context.Background(), 3, 77), ErrCannotCancel)
}

func TestUpdateExcludesSelfFromConflictCheck(t *testing.T) {
	booking := pendingBooking(1)
	repo := newStubBookingRepo(booking)
	// the only occupying booking on the requested dates is the booking itself
	repo.existing = []*domain.Booking{booking}
	svc := newTestService(repo, &stubHistoryRepo{}, nil)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Dates:        []types.Date{day(10)},
		TimeSlot:     "full_day",
		BookerName:   "Somchai P.",
		PhoneNumber:  "0812345678",
		MeetingTitle: "Budget review",
		Department:   "Finance",
	})
	require.NoError(t, err)

	assert.Equal(t, "full_day", resp.TimeSlot)
	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.SlotFullDay, repo.updated.TimeSlot)
}

func TestUpdateConflictWithOtherBooking(t *testing.T) {
	booking := pendingBooking(1)
	other := pendingBooking(2)
	other.TimeSlot = domain.SlotAfternoon
	other.Dates = []types.Date{day(10)}

	repo := newStubBookingRepo(booking)
	repo.existing = []*domain.Booking{booking, other}
	svc := newTestService(repo, &stubHistoryRepo{}, nil)

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Dates:        []types.Date{day(10)},
		TimeSlot:     "full_day",
		BookerName:   "Somchai P.",
		PhoneNumber:  "0812345678",
		MeetingTitle: "Budget review",
		Department:   "Finance",
	})

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Violations, 1)
	assert.True(t, conflict.Violations[0].Date.Equal(day(10)))
	assert.Nil(t, repo.updated)
}

func TestUpdateNonPendingFails(t *testing.T) {
	approved := pendingBooking(1)
	approved.Status = domain.StatusApproved
	svc := newTestService(newStubBookingRepo(approved), &stubHistoryRepo{}, nil)

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Dates:    []types.Date{day(10)},
		TimeSlot: "morning",
	})
	assert.ErrorIs(t, err, ErrCannotUpdate)
}

func TestDeleteOnlyFinalBookings(t *testing.T) {
	pending := pendingBooking(1)
	cancelled := pendingBooking(2)
	cancelled.Status = domain.StatusCancelled
	repo := newStubBookingRepo(pending, cancelled)
	svc := newTestService(repo, &stubHistoryRepo{}, nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1, 77), ErrCannotDelete)
	require.NoError(t, svc.Delete(context.Background(), 2, 77))
	assert.Equal(t, []int64{2}, repo.deleted)
}

func TestGetByCode(t *testing.T) {
	repo := newStubBookingRepo(pendingBooking(1))
	svc := newTestService(repo, &stubHistoryRepo{}, nil)

	resp, err := svc.GetByCode(context.Background(), "BK-00000001")
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.ID)

	_, err = svc.GetByCode(context.Background(), "BK-FFFFFFFF")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
