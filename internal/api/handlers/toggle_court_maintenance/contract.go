package toggle_court_maintenance

import (
	"context"

	"github.com/m04kA/TennisCourtBooking/internal/service/courts/models"
)

type CourtService interface {
	ToggleMaintenance(ctx context.Context, courtID int64) (*models.ToggleMaintenanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
