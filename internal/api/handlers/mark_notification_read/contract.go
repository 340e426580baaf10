package mark_notification_read

import "context"

type NotificationService interface {
	MarkRead(ctx context.Context, notificationID, userID string) error
}

type Logger interface {
	Error(format string, v ...interface{})
}
