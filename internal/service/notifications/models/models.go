package models

import (
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// SendRequest запрос на рассылку уведомления
type SendRequest struct {
	Message string `json:"message"`
}

// SendResponse ответ на рассылку уведомления
type SendResponse struct {
	Message        string `json:"message"`
	NotificationID string `json:"notification_id"`
}

// NotificationResponse данные уведомления
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(list []*domain.Notification) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		result = append(result, NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Sender:    n.Sender,
			CreatedAt: n.CreatedAt.UTC(),
		})
	}
	return result
}
