package domain

import "time"

// Room represents a bookable meeting room
type Room struct {
	ID          int64
	RoomName    string
	Capacity    int
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
