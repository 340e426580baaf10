package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// UseCase use case для получения занятости кортов на день
type UseCase struct {
	courtRepo       CourtRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:       courtRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute возвращает доступные корты и активные бронирования, пересекающие [00:00, 24:00) UTC указанного дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dayStart := domain.StartOfDay(req.Date)
	dayEnd := dayStart.Add(24 * time.Hour)
	uc.logger.Info("GetAvailability: date=%s", dayStart.Format(domain.DateFormat))

	// 2. Корты, не находящиеся на обслуживании
	courts, err := uc.courtRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	// 3. Активные бронирования, пересекающие день (включая переходящие через полночь)
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		From:       &dayStart,
		To:         &dayEnd,
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: %d courts, %d reservations on %s",
		len(courts), len(reservations), dayStart.Format(domain.DateFormat))

	return &Response{
		Date:         dayStart,
		Courts:       courts,
		Reservations: reservations,
	}, nil
}
