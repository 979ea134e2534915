package domain

import (
	"fmt"
	"time"

	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// HistoryAction represents an admin action recorded for a booking
type HistoryAction string

const (
	ActionApproved  HistoryAction = "approved"
	ActionRejected  HistoryAction = "rejected"
	ActionCancelled HistoryAction = "cancelled"
)

// ParseHistoryAction converts a wire string into a HistoryAction
func ParseHistoryAction(s string) (HistoryAction, error) {
	switch HistoryAction(s) {
	case ActionApproved, ActionRejected, ActionCancelled:
		return HistoryAction(s), nil
	default:
		return "", fmt.Errorf("unknown history action %q", s)
	}
}

// HistoryRecord одна запись журнала действий администраторов
type HistoryRecord struct {
	ID        int64
	BookingID int64
	AdminID   int64
	Action    HistoryAction
	Reason    *string
	CreatedAt time.Time

	// Денормализованные данные бронирования для списков
	BookingCode string
	BookerName  string
	RoomName    string
}

// HistoryFilter фильтр выборки журнала
type HistoryFilter struct {
	Action  *HistoryAction
	AdminID *int64
	Limit   int
	Offset  int
}

// ActionCount количество действий одного типа
type ActionCount struct {
	Action HistoryAction
	Count  int
}

// AdminActivity суммарная активность одного администратора
type AdminActivity struct {
	AdminID      int64
	TotalActions int
}

// DailyActivity количество действий одного типа за один день
type DailyActivity struct {
	Date   types.Date
	Action HistoryAction
	Count  int
}
