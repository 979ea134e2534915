package get_daily_overview

import (
	"errors"
	"net/http"

	"github.com/apiarm/MRB-BookingService/internal/api/handlers"
	getDailyOverview "github.com/apiarm/MRB-BookingService/internal/usecase/get_daily_overview"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetDailyOverviewUseCase
	logger  Logger
}

func NewHandler(useCase GetDailyOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/overview/daily?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := types.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /overview/daily - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDailyOverview.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDailyOverview.ErrInvalidInput):
			h.logger.Warn("GET /overview/daily - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /overview/daily - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /overview/daily - Overview built: date=%s, meetings=%d", date, len(result.Meetings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
