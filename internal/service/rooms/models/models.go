package models

import (
	"time"

	"github.com/apiarm/MRB-BookingService/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	RoomName    string  `json:"roomName"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description,omitempty"`
}

// UpdateRoomRequest запрос на изменение комнаты.
// Nil-поля не изменяются.
type UpdateRoomRequest struct {
	RoomName    *string `json:"roomName,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID          int64     `json:"id"`
	RoomName    string    `json:"roomName"`
	Capacity    int       `json:"capacity"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:          r.ID,
		RoomName:    r.RoomName,
		Capacity:    r.Capacity,
		Description: r.Description,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	if rooms == nil {
		return &RoomListResponse{Rooms: []RoomResponse{}}
	}

	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, len(rooms)),
	}
	for i, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms[i] = *roomResp
		}
	}

	return resp
}
