package get_analytics

import (
	"context"

	"github.com/m04kA/TennisCourtBooking/internal/service/analytics/models"
)

type AnalyticsService interface {
	Get(ctx context.Context) (*models.AnalyticsResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
