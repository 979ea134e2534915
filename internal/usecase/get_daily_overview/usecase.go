package get_daily_overview

import (
	"context"
	"fmt"

	"github.com/apiarm/MRB-BookingService/internal/domain"
)

// UseCase use case для получения обзора дня
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Execute собирает расписание и статистику на одну дату.
// В обзор попадают все статусы, включая финальные: страница дня
// показывает и отклоненные заявки, в отличие от расчета занятости.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDailyOverview: date=%s", req.Date)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetDailyOverview: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Все бронирования, покрывающие дату
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		Date:         &req.Date,
		IncludeFinal: true,
	})
	if err != nil {
		uc.logger.Error("GetDailyOverview: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Комнаты нужны все, в том числе деактивированные: старые
	// бронирования могут ссылаться на них
	rooms, err := uc.roomRepo.List(ctx, false)
	if err != nil {
		uc.logger.Error("GetDailyOverview: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	totalActive, err := uc.roomRepo.CountActive(ctx)
	if err != nil {
		uc.logger.Error("GetDailyOverview: failed to count active rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to count active rooms: %v", ErrInternal, err)
	}

	// 4. Проекция на дату и агрегация
	projected := domain.ProjectToDate(bookings, rooms, req.Date)
	stats := domain.ComputeStats(projected, totalActive)

	meetings := make([]Meeting, len(projected))
	for i, m := range projected {
		meetings[i] = toMeeting(m)
	}

	uc.logger.Info("GetDailyOverview: date=%s, %d meeting(s), %d room(s) in use",
		req.Date, stats.TotalMeetings, stats.RoomsInUse)

	return &Response{
		Date:     req.Date,
		Meetings: meetings,
		Stats:    toStats(stats),
	}, nil
}
