package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	bookingRepo "github.com/apiarm/MRB-BookingService/internal/infra/storage/booking"
	"github.com/apiarm/MRB-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	historyRepo HistoryRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
// notifier может быть nil, если уведомления выключены
func NewService(
	bookingRepo BookingRepository,
	historyRepo HistoryRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByCode получает бронирование по публичному коду заявки.
// Код выдается при создании, по нему заявитель проверяет статус без ID.
func (s *Service) GetByCode(ctx context.Context, code string) (*models.BookingResponse, error) {
	s.logger.Info("GetByCode: fetching booking code=%s", code)

	booking, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByCode: booking code=%s not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по комнате, статусу, дате и включению финальных заявок
//
// Примеры использования:
// - Все активные заявки: List(ctx, &ListBookingsRequest{})
// - Заявки комнаты: указать RoomID
// - Заявки на дату: указать Date
// - Только ожидающие решения: указать Status = "pending"
// - Включая отклоненные и отмененные: IncludeFinal = true
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.RoomID != nil {
		logMsg += fmt.Sprintf(", room=%d", *req.RoomID)
	}
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", *req.Date)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeFinal {
		logMsg += ", includeFinal=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update заменяет даты, слот и реквизиты заявки целиком.
// Изменять можно только заявки в статусе pending; проверка конфликтов
// по новым датам идет в сериализуемой транзакции и исключает саму заявку.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d, dates=%d, slot=%s", id, len(req.Dates), req.TimeSlot)

	slot, err := domain.ParseTimeSlot(req.TimeSlot)
	if err != nil {
		s.logger.Warn("Update: invalid time slot=%s for booking id=%d", req.TimeSlot, id)
		return nil, fmt.Errorf("%w: invalid time slot", ErrInvalidInput)
	}

	if len(req.Dates) == 0 || len(req.Dates) > domain.MaxBookingDates {
		s.logger.Warn("Update: invalid dates count=%d for booking id=%d", len(req.Dates), id)
		return nil, fmt.Errorf("%w: between 1 and %d dates required", ErrInvalidInput, domain.MaxBookingDates)
	}

	var updated *domain.Booking

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if !booking.CanBeUpdated() {
			s.logger.Warn("Update: booking id=%d cannot be updated, status=%s", id, booking.Status)
			return ErrCannotUpdate
		}

		existing, err := s.bookingRepo.ListByRoomAndDates(txCtx, booking.RoomID, req.Dates)
		if err != nil {
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		// Собственные даты заявки не конфликтуют с её новыми датами
		others := make([]*domain.Booking, 0, len(existing))
		for _, b := range existing {
			if b.ID != id {
				others = append(others, b)
			}
		}

		var violations []Violation
		for _, date := range req.Dates {
			if !domain.IsSlotAvailable(date, slot, others) {
				violations = append(violations, Violation{
					Date:   date,
					Reason: fmt.Sprintf("slot %s unavailable on %s", slot, date),
				})
			}
		}
		if len(violations) > 0 {
			s.logger.Warn("Update: booking id=%d rejected with %d violation(s)", id, len(violations))
			return &SlotConflictError{Violations: violations}
		}

		booking.Dates = req.Dates
		booking.TimeSlot = slot
		booking.BookerName = req.BookerName
		booking.PhoneNumber = req.PhoneNumber
		booking.MeetingTitle = req.MeetingTitle
		booking.Department = req.Department
		booking.NeedBreak = req.NeedBreak
		booking.BreakDetails = req.BreakDetails
		booking.BreakOrganizer = req.BreakOrganizer

		if err := s.bookingRepo.Update(txCtx, booking); err != nil {
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated booking id=%d", id)
	return models.FromDomainBooking(updated), nil
}

// Approve одобряет заявку.
// Доступно только для заявок в статусе pending; решение фиксируется в журнале
// в той же транзакции, что и смена статуса.
func (s *Service) Approve(ctx context.Context, id int64, adminID int64) error {
	return s.review(ctx, id, adminID, domain.StatusApproved, domain.ActionApproved, nil)
}

// Reject отклоняет заявку с опциональной причиной
func (s *Service) Reject(ctx context.Context, id int64, adminID int64, reason *string) error {
	return s.review(ctx, id, adminID, domain.StatusRejected, domain.ActionRejected, reason)
}

// Cancel отменяет заявку.
// Отменить можно заявку в статусе pending или approved; отмена тоже
// попадает в журнал решений.
func (s *Service) Cancel(ctx context.Context, id int64, adminID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by admin=%d", id, adminID)

	var booking *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%d not found", id)
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !b.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, b.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, domain.StatusCancelled); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		record := &domain.HistoryRecord{
			BookingID: id,
			AdminID:   adminID,
			Action:    domain.ActionCancelled,
		}
		if _, err := s.historyRepo.Create(txCtx, record); err != nil {
			return fmt.Errorf("%w: Cancel - failed to record history: %v", ErrInternal, err)
		}

		booking = b
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	s.notifyReviewed(booking, domain.ActionCancelled, adminID)
	return nil
}

// Delete удаляет запись заявки вместе с её датами.
// Удалять можно только заявки в финальном статусе; активные заявки
// сначала отменяются или отклоняются.
func (s *Service) Delete(ctx context.Context, id int64, adminID int64) error {
	s.logger.Info("Delete: deleting booking id=%d by admin=%d", id, adminID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !booking.IsFinal() {
		s.logger.Warn("Delete: booking id=%d is not final, status=%s", id, booking.Status)
		return ErrCannotDelete
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// review общий путь одобрения и отклонения заявки
func (s *Service) review(
	ctx context.Context,
	id int64,
	adminID int64,
	status domain.BookingStatus,
	action domain.HistoryAction,
	reason *string,
) error {
	s.logger.Info("review: booking id=%d, action=%s, admin=%d", id, action, adminID)

	var booking *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("review: booking id=%d not found", id)
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: review - repository error: %v", ErrInternal, err)
		}

		if !b.CanBeReviewed() {
			s.logger.Warn("review: booking id=%d already reviewed, status=%s", id, b.Status)
			return ErrAlreadyReviewed
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, status); err != nil {
			return fmt.Errorf("%w: review - repository error: %v", ErrInternal, err)
		}

		record := &domain.HistoryRecord{
			BookingID: id,
			AdminID:   adminID,
			Action:    action,
			Reason:    reason,
		}
		if _, err := s.historyRepo.Create(txCtx, record); err != nil {
			return fmt.Errorf("%w: review - failed to record history: %v", ErrInternal, err)
		}

		booking = b
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("review: booking id=%d %s by admin=%d", id, action, adminID)
	s.notifyReviewed(booking, action, adminID)
	return nil
}

// notifyReviewed отправляет уведомление о решении, ошибки не фатальны
func (s *Service) notifyReviewed(booking *domain.Booking, action domain.HistoryAction, adminID int64) {
	if s.notifier == nil || booking == nil {
		return
	}
	if err := s.notifier.BookingReviewed(booking, action, adminID); err != nil {
		s.logger.Error("notifyReviewed: notification failed for booking id=%d: %v", booking.ID, err)
	}
}
