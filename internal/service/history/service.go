package history

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/apiarm/MRB-BookingService/internal/infra/storage/booking"
	"github.com/apiarm/MRB-BookingService/internal/service/history/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200

	topAdminsLimit     = 10
	recentActivityDays = 30
)

// Service сервис журнала решений администраторов
type Service struct {
	historyRepo HistoryRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(historyRepo HistoryRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		historyRepo: historyRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List получает страницу журнала решений с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListHistoryRequest) (*models.HistoryListResponse, error) {
	logMsg := "List: fetching history"
	if req.Action != nil {
		logMsg += fmt.Sprintf(", action=%s", *req.Action)
	}
	if req.AdminID != nil {
		logMsg += fmt.Sprintf(", admin=%d", *req.AdminID)
	}
	s.logger.Info(logMsg)

	if req.Limit <= 0 {
		req.Limit = defaultPageSize
	}
	if req.Limit > maxPageSize {
		req.Limit = maxPageSize
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	records, total, err := s.historyRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d of %d records", len(records), total)
	return models.FromDomainRecordList(records, total, req.Limit, req.Offset), nil
}

// GetByBooking получает журнал решений по одной заявке
func (s *Service) GetByBooking(ctx context.Context, bookingID int64) ([]models.HistoryRecordResponse, error) {
	s.logger.Info("GetByBooking: fetching history for booking id=%d", bookingID)

	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByBooking: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBooking - repository error: %v", ErrInternal, err)
	}

	records, err := s.historyRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("GetByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBooking - repository error: %v", ErrInternal, err)
	}

	resp := make([]models.HistoryRecordResponse, len(records))
	for i, record := range records {
		resp[i] = *models.FromDomainRecord(record)
	}

	s.logger.Info("GetByBooking: successfully fetched %d records for booking id=%d", len(records), bookingID)
	return resp, nil
}

// Summary собирает сводку по журналу: счетчики действий, самые активные
// администраторы и активность за последние недели
func (s *Service) Summary(ctx context.Context) (*models.SummaryResponse, error) {
	s.logger.Info("Summary: building history summary")

	actions, err := s.historyRepo.ActionSummary(ctx)
	if err != nil {
		s.logger.Error("Summary: failed to get action summary: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	topAdmins, err := s.historyRepo.TopAdmins(ctx, topAdminsLimit)
	if err != nil {
		s.logger.Error("Summary: failed to get top admins: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	recent, err := s.historyRepo.RecentActivity(ctx, recentActivityDays)
	if err != nil {
		s.logger.Error("Summary: failed to get recent activity: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	resp := &models.SummaryResponse{
		Actions:        make([]models.ActionCountResponse, len(actions)),
		TopAdmins:      make([]models.AdminActivityResponse, len(topAdmins)),
		RecentActivity: make([]models.DailyActivityResponse, len(recent)),
	}
	for i, a := range actions {
		resp.Actions[i] = models.ActionCountResponse{Action: string(a.Action), Count: a.Count}
	}
	for i, a := range topAdmins {
		resp.TopAdmins[i] = models.AdminActivityResponse{AdminID: a.AdminID, TotalActions: a.TotalActions}
	}
	for i, a := range recent {
		resp.RecentActivity[i] = models.DailyActivityResponse{Date: a.Date, Action: string(a.Action), Count: a.Count}
	}

	s.logger.Info("Summary: built summary with %d action type(s)", len(actions))
	return resp, nil
}
