package models

import (
	"errors"
	"time"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

var (
	// ErrInvalidAction возвращается при некорректном действии
	ErrInvalidAction = errors.New("invalid history action")
)

// Request модели

// ListHistoryRequest запрос на выборку журнала решений
type ListHistoryRequest struct {
	Action  *string `json:"action,omitempty"`  // Фильтр по действию (опционально)
	AdminID *int64  `json:"adminId,omitempty"` // Фильтр по администратору (опционально)
	Limit   int     `json:"limit,omitempty"`
	Offset  int     `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListHistoryRequest) ToDomainFilter() (domain.HistoryFilter, error) {
	filter := domain.HistoryFilter{
		AdminID: r.AdminID,
		Limit:   r.Limit,
		Offset:  r.Offset,
	}

	if r.Action != nil {
		action, err := domain.ParseHistoryAction(*r.Action)
		if err != nil {
			return filter, ErrInvalidAction
		}
		filter.Action = &action
	}

	return filter, nil
}

// Response модели

// HistoryRecordResponse одна запись журнала
type HistoryRecordResponse struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"bookingId"`
	AdminID   int64     `json:"adminId"`
	Action    string    `json:"action"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	BookingCode string `json:"bookingCode"`
	BookerName  string `json:"bookerName"`
	RoomName    string `json:"roomName"`
}

// HistoryListResponse страница журнала решений
type HistoryListResponse struct {
	Records []HistoryRecordResponse `json:"records"`
	Total   int                     `json:"total"`
	Limit   int                     `json:"limit"`
	Offset  int                     `json:"offset"`
}

// ActionCountResponse количество действий одного типа
type ActionCountResponse struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// AdminActivityResponse суммарная активность администратора
type AdminActivityResponse struct {
	AdminID      int64 `json:"adminId"`
	TotalActions int   `json:"totalActions"`
}

// DailyActivityResponse действия одного типа за один день
type DailyActivityResponse struct {
	Date   types.Date `json:"date"`
	Action string     `json:"action"`
	Count  int        `json:"count"`
}

// SummaryResponse сводка по журналу решений
type SummaryResponse struct {
	Actions        []ActionCountResponse   `json:"actions"`
	TopAdmins      []AdminActivityResponse `json:"topAdmins"`
	RecentActivity []DailyActivityResponse `json:"recentActivity"`
}

// Методы конвертации

// FromDomainRecord конвертирует domain модель в DTO
func FromDomainRecord(r *domain.HistoryRecord) *HistoryRecordResponse {
	if r == nil {
		return nil
	}

	return &HistoryRecordResponse{
		ID:          r.ID,
		BookingID:   r.BookingID,
		AdminID:     r.AdminID,
		Action:      string(r.Action),
		Reason:      r.Reason,
		CreatedAt:   r.CreatedAt,
		BookingCode: r.BookingCode,
		BookerName:  r.BookerName,
		RoomName:    r.RoomName,
	}
}

// FromDomainRecordList конвертирует список domain моделей в DTO
func FromDomainRecordList(records []*domain.HistoryRecord, total, limit, offset int) *HistoryListResponse {
	resp := &HistoryListResponse{
		Records: make([]HistoryRecordResponse, len(records)),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for i, record := range records {
		if recordResp := FromDomainRecord(record); recordResp != nil {
			resp.Records[i] = *recordResp
		}
	}
	return resp
}
