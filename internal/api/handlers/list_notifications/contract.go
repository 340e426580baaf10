package list_notifications

import (
	"context"

	"github.com/m04kA/TennisCourtBooking/internal/service/notifications/models"
)

type NotificationService interface {
	ListUnread(ctx context.Context, userID string) ([]models.NotificationResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
