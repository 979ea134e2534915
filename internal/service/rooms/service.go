package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	roomRepo "github.com/apiarm/MRB-BookingService/internal/infra/storage/room"
	"github.com/apiarm/MRB-BookingService/internal/service/rooms/models"
)

// Service сервис для работы с переговорными комнатами
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List получает список комнат
// activeOnly=true отдает только комнаты, открытые для бронирования
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms, activeOnly=%v", activeOnly)

	rooms, err := s.roomRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// Create создает новую комнату, активную по умолчанию
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room name=%s, capacity=%d", req.RoomName, req.Capacity)

	if err := validateRoomFields(req.RoomName, req.Capacity); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	room := &domain.Room{
		RoomName:    strings.TrimSpace(req.RoomName),
		Capacity:    req.Capacity,
		Description: req.Description,
		IsActive:    true,
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// Update изменяет комнату, nil-поля запроса не трогаются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.RoomName != nil {
		room.RoomName = strings.TrimSpace(*req.RoomName)
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Description != nil {
		room.Description = req.Description
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := validateRoomFields(room.RoomName, room.Capacity); err != nil {
		s.logger.Warn("Update: validation failed for room id=%d: %v", id, err)
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%d", id)
	return models.FromDomainRoom(room), nil
}

// Deactivate выключает комнату из бронирования.
// Запись не удаляется: существующие бронирования продолжают ссылаться
// на комнату, новые заявки на неё не принимаются.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating room id=%d", id)

	if err := s.roomRepo.SetActive(ctx, id, false); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Deactivate: room id=%d not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("Deactivate: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated room id=%d", id)
	return nil
}

// validateRoomFields проверяет имя и вместимость комнаты
func validateRoomFields(name string, capacity int) error {
	nameLen := utf8.RuneCountInString(strings.TrimSpace(name))
	if nameLen < domain.MinRoomNameLength || nameLen > domain.MaxRoomNameLength {
		return fmt.Errorf("%w: roomName must be between %d and %d characters",
			ErrInvalidInput, domain.MinRoomNameLength, domain.MaxRoomNameLength)
	}

	if capacity < domain.MinRoomCapacity || capacity > domain.MaxRoomCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinRoomCapacity, domain.MaxRoomCapacity)
	}

	return nil
}
