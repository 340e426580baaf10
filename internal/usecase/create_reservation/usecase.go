package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	courtRepo "github.com/m04kA/TennisCourtBooking/internal/infra/storage/court"
	reservationRepo "github.com/m04kA/TennisCourtBooking/internal/infra/storage/reservation"
	"github.com/m04kA/TennisCourtBooking/internal/integrations/payments"
)

// UseCase use case для создания бронирования корта
type UseCase struct {
	courtRepo       CourtRepository
	reservationRepo ReservationRepository
	paymentClient   PaymentClient
	txManager       TransactionManager
	rules           domain.BookingRules
	paymentMode     domain.PaymentMode
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	reservationRepo ReservationRepository,
	paymentClient PaymentClient,
	txManager TransactionManager,
	rules domain.BookingRules,
	paymentMode domain.PaymentMode,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:       courtRepo,
		reservationRepo: reservationRepo,
		paymentClient:   paymentClient,
		txManager:       txManager,
		rules:           rules,
		paymentMode:     paymentMode,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute проверяет бронирование по цепочке правил и сохраняет его.
// Правила проверяются строго по порядку, возвращается первая нарушенная:
// корт, длительность, участники, окно бронирования, пересечение.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.RecordReservationRejected(rejectionReason(err))
		return nil, err
	}

	start, end := req.StartTime.UTC(), req.EndTime.UTC()
	uc.logger.Info("CreateReservation: user=%s, court=%d, start=%s, end=%s, attendees=%d",
		req.User.ID, req.CourtID, start.Format("2006-01-02T15:04:05Z"), end.Format("2006-01-02T15:04:05Z"), req.Attendees)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().UTC()

	reservationID := uuid.NewString()
	var (
		result *domain.Reservation
		intent *payments.Intent
	)

	// 3. Проверки и запись в одной транзакции. Гонку двух пересекающихся вставок
	// разрешает ограничение исключения в БД.
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Корт существует и не на обслуживании
		court, err := uc.courtRepo.GetByID(txCtx, req.CourtID)
		if err != nil && !errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Error("CreateReservation: failed to get court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}
		if err := validateCourt(court); err != nil {
			uc.logger.Warn("CreateReservation: court id=%d is not available", req.CourtID)
			return err
		}

		// 3.2. Минимальная длительность
		hours := end.Sub(start).Hours()
		if err := validateDuration(hours, uc.rules); err != nil {
			uc.logger.Warn("CreateReservation: duration %.2fh is below %.2fh", hours, uc.rules.MinDurationHours)
			return err
		}

		// 3.3. Количество участников
		if err := validateAttendees(req.Attendees, uc.rules); err != nil {
			uc.logger.Warn("CreateReservation: %d attendees exceed limit %d", req.Attendees, uc.rules.MaxAttendees)
			return err
		}

		// 3.4. Окно бронирования по тарифу резидента
		if err := validateAdvanceWindow(start, now, req.User.Tiers, uc.rules); err != nil {
			uc.logger.Warn("CreateReservation: %d days ahead exceeds window of %d days (resident=%t)",
				daysAhead(start, now), uc.rules.AdvanceDaysFor(req.User.Tiers), req.User.Tiers.Resident)
			return err
		}

		// 3.5. Пересечение с активными бронированиями корта
		existing, err := uc.reservationRepo.FindOverlapping(txCtx, req.CourtID, start, end)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations for court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}
		if conflicts := findConflicts(existing, start, end); len(conflicts) > 0 {
			uc.logger.Warn("CreateReservation: court id=%d already reserved by reservation id=%s",
				req.CourtID, conflicts[0].ID)
			return ErrTimeConflict
		}

		// 3.6. Стоимость по тарифу
		cost := uc.rules.Price(req.User.Tiers, hours)

		// 3.7. Платежное намерение
		intent, err = uc.paymentClient.CreateIntent(txCtx, reservationID, cost)
		if err != nil {
			if errors.Is(err, payments.ErrDeclined) {
				uc.logger.Warn("CreateReservation: payment intent declined for reservation id=%s: %v", reservationID, err)
				return fmt.Errorf("%w: %v", ErrPaymentFailed, err)
			}
			uc.logger.Error("CreateReservation: failed to create payment intent: %v", err)
			return fmt.Errorf("%w: failed to create payment intent: %v", ErrInternal, err)
		}

		// 3.8. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ID:         reservationID,
			UserID:     req.User.ID,
			CourtID:    req.CourtID,
			StartTime:  start,
			EndTime:    end,
			Attendees:  req.Attendees,
			TotalCost:  cost,
			Status:     uc.paymentMode.InitialStatus(),
			PaymentRef: intent.ID,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrTimeConflict) {
				uc.logger.Warn("CreateReservation: concurrent reservation won court id=%d, payment intent %s orphaned",
					req.CourtID, intent.ID)
				return ErrTimeConflict
			}
			uc.logger.Error("CreateReservation: failed to create reservation, payment intent %s orphaned: %v", intent.ID, err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.metrics.RecordReservationRejected(rejectionReason(err))
		return nil, err
	}

	pricing := uc.rules.PricingFor(req.User.Tiers)
	uc.metrics.RecordReservationCreated(pricing)
	uc.logger.Info("CreateReservation: created reservation id=%s, cost=%.2f (%s), status=%s",
		result.ID, result.TotalCost, pricing, result.Status)

	return &Response{
		ReservationID: result.ID,
		ClientSecret:  intent.ClientSecret,
		PaymentRef:    result.PaymentRef,
		CourtID:       result.CourtID,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Attendees:     result.Attendees,
		TotalCost:     result.TotalCost,
		Pricing:       pricing,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}, nil
}
