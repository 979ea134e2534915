package get_room_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	roomRepo "github.com/apiarm/MRB-BookingService/internal/infra/storage/room"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// UseCase use case для получения календаря доступности комнаты
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

// Execute выполняет use case получения доступности комнаты за период
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomAvailability: room=%d, from=%s, to=%s", req.RoomID, req.From, req.To)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Разворачиваем период в список дат
	dates := make([]types.Date, 0, req.From.DaysUntil(req.To)+1)
	for d := req.From; !d.After(req.To); d = d.AddDays(1) {
		dates = append(dates, d)
	}

	// 4. Одним запросом забираем все занимающие слоты бронирования периода
	bookings, err := uc.bookingRepo.ListByRoomAndDates(ctx, req.RoomID, dates)
	if err != nil {
		uc.logger.Error("GetRoomAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Считаем занятость по каждой дате
	days := make([]Day, len(dates))
	for i, date := range dates {
		days[i] = Day{
			Date:           date,
			Status:         domain.DayAvailability(date, bookings),
			OccupiedSlots:  domain.OccupiedSlots(date, bookings),
			AvailableSlots: domain.AvailableSlots(date, bookings),
		}
	}

	uc.logger.Info("GetRoomAvailability: room=%d, %d day(s) computed", req.RoomID, len(days))

	return &Response{
		RoomID:   room.ID,
		RoomName: room.RoomName,
		From:     req.From,
		To:       req.To,
		Days:     days,
	}, nil
}
