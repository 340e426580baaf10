package reservations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	reservationRepo "github.com/m04kA/TennisCourtBooking/internal/infra/storage/reservation"
	"github.com/m04kA/TennisCourtBooking/internal/service/reservations/models"
	"github.com/m04kA/TennisCourtBooking/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	exporter        Exporter
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
	now             func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	exporter Exporter,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		exporter:        exporter,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// GetUserReservations возвращает бронирования пользователя по возрастанию времени начала
func (s *Service) GetUserReservations(ctx context.Context, userID string) ([]models.ReservationResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%s", userID)

	list, err := s.reservationRepo.List(ctx, domain.ReservationFilter{UserID: &userID})
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%s", len(list), userID)
	return models.FromDomainReservationList(list), nil
}

// GetAllReservations возвращает все бронирования (для персонала)
func (s *Service) GetAllReservations(ctx context.Context) ([]models.ReservationResponse, error) {
	list, err := s.reservationRepo.List(ctx, domain.ReservationFilter{})
	if err != nil {
		s.logger.Error("GetAllReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllReservations: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// ExportReservations выгружает все бронирования в w
func (s *Service) ExportReservations(ctx context.Context, w io.Writer) error {
	list, err := s.reservationRepo.List(ctx, domain.ReservationFilter{})
	if err != nil {
		s.logger.Error("ExportReservations: repository error: %v", err)
		return fmt.Errorf("%w: ExportReservations - repository error: %v", ErrInternal, err)
	}

	if err := s.exporter.WriteReservations(w, list); err != nil {
		s.logger.Error("ExportReservations: export error: %v", err)
		return fmt.Errorf("%w: ExportReservations - export error: %v", ErrInternal, err)
	}

	s.logger.Info("ExportReservations: exported %d reservations", len(list))
	return nil
}

// HandlePaymentEvent применяет событие платежного шлюза к бронированию.
// Повторная доставка события, уже приведшего бронирование в целевой статус, не считается ошибкой.
// Неизвестные типы событий подтверждаются без изменений.
func (s *Service) HandlePaymentEvent(ctx context.Context, event *models.PaymentEvent) (*models.PaymentEventResult, error) {
	var target domain.ReservationStatus
	var from []domain.ReservationStatus

	switch event.Type {
	case models.EventPaymentSucceeded:
		target = domain.StatusConfirmed
		from = []domain.ReservationStatus{domain.StatusPending}
	case models.EventPaymentFailed:
		target = domain.StatusCancelled
		from = domain.ActiveStatuses
	default:
		s.logger.Info("HandlePaymentEvent: ignoring event type=%s", event.Type)
		return &models.PaymentEventResult{Received: true}, nil
	}

	ref := strings.TrimSpace(event.Data.Object.ID)
	if ref == "" {
		return nil, fmt.Errorf("%w: payment intent id is required", ErrInvalidInput)
	}

	s.logger.Info("HandlePaymentEvent: event type=%s for payment_ref=%s", event.Type, ref)

	var reservation *domain.Reservation
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Блокируем бронирование до конца транзакции
		r, err := s.reservationRepo.GetByPaymentRef(ctx, ref)
		if err != nil {
			return err
		}
		reservation = r

		// 2. Повторное событие
		if r.Status == target {
			return nil
		}

		// 3. Переход статуса
		if err := s.reservationRepo.UpdateStatus(ctx, r.ID, from, target); err != nil {
			return err
		}
		r.Status = target
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			s.logger.Warn("HandlePaymentEvent: reservation with payment_ref=%s not found", ref)
			return nil, ErrReservationNotFound
		case errors.Is(err, reservationRepo.ErrStatusTransition):
			s.logger.Warn("HandlePaymentEvent: event type=%s not applicable to reservation with payment_ref=%s", event.Type, ref)
			return nil, ErrInvalidTransition
		default:
			s.logger.Error("HandlePaymentEvent: failed to apply event for payment_ref=%s: %v", ref, err)
			return nil, fmt.Errorf("%w: HandlePaymentEvent - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("HandlePaymentEvent: reservation id=%s is %s", reservation.ID, reservation.Status)
	return &models.PaymentEventResult{
		Received:      true,
		ReservationID: ptr.Ptr(reservation.ID),
		Status:        ptr.Ptr(string(reservation.Status)),
	}, nil
}

// ExpireStaleHolds отменяет неоплаченные бронирования, созданные раньше now - ttl
func (s *Service) ExpireStaleHolds(ctx context.Context, ttl time.Duration) (int64, error) {
	deadline := s.now().UTC().Add(-ttl)

	n, err := s.reservationRepo.CancelPendingCreatedBefore(ctx, deadline)
	if err != nil {
		s.logger.Error("ExpireStaleHolds: repository error: %v", err)
		return 0, fmt.Errorf("%w: ExpireStaleHolds - repository error: %v", ErrInternal, err)
	}

	if n > 0 {
		s.logger.Info("ExpireStaleHolds: cancelled %d holds created before %s", n, deadline.Format(time.RFC3339))
		s.metrics.RecordHoldsExpired(n)
	}
	return n, nil
}
