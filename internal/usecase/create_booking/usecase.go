package create_booking

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	roomRepo "github.com/apiarm/MRB-BookingService/internal/infra/storage/room"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// notifier может быть nil, если уведомления выключены
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности слотов и вставка идут в одной сериализуемой
// транзакции: клиентская предварительная проверка не видит чужих заявок,
// созданных после её снимка, поэтому единственный авторитетный контроль
// конфликтов находится здесь.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, slot=%s, dates=%d, booker=%s",
		req.RoomID, req.TimeSlot, len(req.Dates), req.BookerName)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Только активные комнаты доступны для новых бронирований
	if !room.IsActive {
		uc.logger.Warn("CreateBooking: room id=%d is inactive", req.RoomID)
		return nil, ErrRoomInactive
	}

	days := make([]DayRequest, len(req.Dates))
	for i, d := range req.Dates {
		days[i] = DayRequest{Date: d, Slot: req.TimeSlot}
	}

	var created *domain.Booking

	// 4. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Снимок занятости комнаты на запрошенные даты
		existing, err := uc.bookingRepo.ListByRoomAndDates(txCtx, req.RoomID, req.Dates)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get existing bookings: %v", err)
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		// 4.2. Валидация черновика: все конфликты собираются за один проход
		if violations := validateDraft(days, existing); len(violations) > 0 {
			uc.logger.Warn("CreateBooking: draft rejected with %d violation(s)", len(violations))
			return &SlotConflictError{Violations: violations}
		}

		// 4.3. Создаем бронирование
		booking := &domain.Booking{
			BookingCode:    generateBookingCode(),
			RoomID:         req.RoomID,
			Dates:          req.Dates,
			TimeSlot:       req.TimeSlot,
			Status:         domain.StatusPending,
			BookerName:     req.BookerName,
			PhoneNumber:    req.PhoneNumber,
			MeetingTitle:   req.MeetingTitle,
			Department:     req.Department,
			NeedBreak:      req.NeedBreak,
			BreakDetails:   req.BreakDetails,
			BreakOrganizer: req.BreakOrganizer,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d code=%s room=%d",
		created.ID, created.BookingCode, created.RoomID)

	// 5. Уведомление администраторов (best-effort)
	if uc.notifier != nil {
		if err := uc.notifier.BookingCreated(created, room.RoomName); err != nil {
			uc.logger.Error("CreateBooking: notification failed for booking id=%d: %v", created.ID, err)
		}
	}

	return &Response{
		ID:          created.ID,
		BookingCode: created.BookingCode,
		RoomID:      created.RoomID,
		Dates:       created.Dates,
		TimeSlot:    created.TimeSlot,
		Status:      created.Status,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// generateBookingCode генерирует публичный код заявки вида BK-3FA29C01
func generateBookingCode() string {
	id := uuid.New()
	return "BK-" + strings.ToUpper(hex.EncodeToString(id[:4]))
}
