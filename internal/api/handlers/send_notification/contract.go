package send_notification

import (
	"context"

	"github.com/m04kA/TennisCourtBooking/internal/service/notifications/models"
)

type NotificationService interface {
	Send(ctx context.Context, sender string, req *models.SendRequest) (*models.SendResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
