package analytics

import (
	"context"
	"fmt"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/internal/service/analytics/models"
)

// Service сервис сводной аналитики
type Service struct {
	reservations ReservationStats
	users        UserCounter
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(reservations ReservationStats, users UserCounter, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		reservations: reservations,
		users:        users,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get собирает показатели в одной транзакции только для чтения.
// Выручка учитывает только подтвержденные бронирования, персонал не считается участником.
func (s *Service) Get(ctx context.Context) (*models.AnalyticsResponse, error) {
	var result domain.Analytics

	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		total, confirmed, revenue, err := s.reservations.Stats(ctx)
		if err != nil {
			return fmt.Errorf("reservation stats: %w", err)
		}

		users, err := s.users.CountNonStaff(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}

		result = domain.Analytics{
			TotalReservations:     total,
			ConfirmedReservations: confirmed,
			TotalRevenue:          revenue,
			TotalUsers:            users,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Get: %v", err)
		return nil, fmt.Errorf("%w: Get - %v", ErrInternal, err)
	}

	s.logger.Info("Get: reservations=%d confirmed=%d users=%d", result.TotalReservations, result.ConfirmedReservations, result.TotalUsers)
	return models.FromDomainAnalytics(&result), nil
}
