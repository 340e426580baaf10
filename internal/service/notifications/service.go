package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	notificationRepo "github.com/m04kA/TennisCourtBooking/internal/infra/storage/notification"
	"github.com/m04kA/TennisCourtBooking/internal/service/notifications/models"
)

// Service сервис рассылки уведомлений участникам
type Service struct {
	notificationRepo NotificationRepository
	inboxLimit       int
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		inboxLimit:       domain.NotificationInboxLimit,
		logger:           logger,
	}
}

// Send сохраняет уведомление от имени сотрудника sender
func (s *Service) Send(ctx context.Context, sender string, req *models.SendRequest) (*models.SendResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	n, err := s.notificationRepo.Create(ctx, &domain.Notification{
		ID:      uuid.NewString(),
		Message: message,
		Sender:  sender,
	})
	if err != nil {
		s.logger.Error("Send: repository error: %v", err)
		return nil, fmt.Errorf("%w: Send - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Send: notification id=%s sent by %s", n.ID, sender)
	return &models.SendResponse{
		Message:        "Notification sent successfully",
		NotificationID: n.ID,
	}, nil
}

// ListUnread возвращает последние непрочитанные уведомления пользователя
func (s *Service) ListUnread(ctx context.Context, userID string) ([]models.NotificationResponse, error) {
	list, err := s.notificationRepo.ListUnread(ctx, userID, s.inboxLimit)
	if err != nil {
		s.logger.Error("ListUnread: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListUnread - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainNotificationList(list), nil
}

// MarkRead отмечает уведомление прочитанным пользователем
func (s *Service) MarkRead(ctx context.Context, notificationID, userID string) error {
	if _, err := uuid.Parse(notificationID); err != nil {
		return ErrNotificationNotFound
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%s not found", notificationID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%s: %v", notificationID, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}
	return nil
}
