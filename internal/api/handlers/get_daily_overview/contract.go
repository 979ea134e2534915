package get_daily_overview

import (
	"context"

	getDailyOverview "github.com/apiarm/MRB-BookingService/internal/usecase/get_daily_overview"
)

type GetDailyOverviewUseCase interface {
	Execute(ctx context.Context, req *getDailyOverview.Request) (*getDailyOverview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
