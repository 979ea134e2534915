package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	createBooking "github.com/apiarm/MRB-BookingService/internal/usecase/create_booking"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

type stubUseCase struct {
	gotReq *createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{
		resp: &createBooking.Response{
			ID:          42,
			BookingCode: "BK-1A2B3C4D",
			RoomID:      7,
			Dates:       []types.Date{{Year: 2026, Month: 9, Day: 10}},
			TimeSlot:    domain.SlotMorning,
			Status:      domain.StatusPending,
			CreatedAt:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	body := `{
		"roomId": 7,
		"dates": ["2026-09-10"],
		"timeSlot": "morning",
		"bookerName": "Анна Петрова",
		"phoneNumber": "9161234567",
		"meetingTitle": "Планирование квартала",
		"department": "Маркетинг"
	}`

	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "BK-1A2B3C4D", data["bookingCode"])
	assert.Equal(t, "pending", data["status"])

	// Даты дошли до use case типизированными
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, []types.Date{{Year: 2026, Month: 9, Day: 10}}, uc.gotReq.Dates)
	assert.Equal(t, domain.SlotMorning, uc.gotReq.TimeSlot)
}

func TestHandle_SlotConflict(t *testing.T) {
	uc := &stubUseCase{
		err: &createBooking.SlotConflictError{
			Violations: []createBooking.Violation{
				{Date: types.Date{Year: 2026, Month: 9, Day: 10}, Reason: "slot morning unavailable on 2026-09-10"},
				{Date: types.Date{Year: 2026, Month: 9, Day: 12}, Reason: "slot morning unavailable on 2026-09-12"},
			},
		},
	}

	body := `{"roomId": 7, "dates": ["2026-09-10", "2026-09-12"], "timeSlot": "morning",
		"bookerName": "Анна", "phoneNumber": "9161234567",
		"meetingTitle": "Встреча", "department": "IT"}`

	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusConflict, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])

	data := envelope["data"].(map[string]interface{})
	violations := data["violations"].([]interface{})
	require.Len(t, violations, 2)

	first := violations[0].(map[string]interface{})
	assert.Equal(t, "2026-09-10", first["date"])
	assert.Equal(t, "slot morning unavailable on 2026-09-10", first["reason"])
}

func TestHandle_RequestLevelViolationOmitsDate(t *testing.T) {
	uc := &stubUseCase{
		err: &createBooking.SlotConflictError{
			Violations: []createBooking.Violation{
				{Reason: "no dates selected"},
			},
		},
	}

	body := `{"roomId": 7, "dates": [], "timeSlot": "morning",
		"bookerName": "Анна", "phoneNumber": "9161234567",
		"meetingTitle": "Встреча", "department": "IT"}`

	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusConflict, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	violations := data["violations"].([]interface{})
	require.Len(t, violations, 1)

	first := violations[0].(map[string]interface{})
	_, hasDate := first["date"]
	assert.False(t, hasDate)
	assert.Equal(t, "no dates selected", first["reason"])
}

func TestHandle_ErrorMapping(t *testing.T) {
	body := `{"roomId": 7, "dates": ["2026-09-10"], "timeSlot": "morning",
		"bookerName": "Анна", "phoneNumber": "9161234567",
		"meetingTitle": "Встреча", "department": "IT"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"room not found", createBooking.ErrRoomNotFound, http.StatusNotFound},
		{"room inactive", createBooking.ErrRoomInactive, http.StatusConflict},
		{"date in past", createBooking.ErrDateInPast, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			envelope := decodeEnvelope(t, rec)
			assert.Equal(t, false, envelope["success"])
		})
	}
}

func TestHandle_BadJSON(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, `{"roomId": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateFormat(t *testing.T) {
	body := `{"roomId": 7, "dates": ["10.09.2026"], "timeSlot": "morning",
		"bookerName": "Анна", "phoneNumber": "9161234567",
		"meetingTitle": "Встреча", "department": "IT"}`

	uc := &stubUseCase{}
	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}
