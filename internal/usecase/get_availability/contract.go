package get_availability

import (
	"context"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	List(ctx context.Context, onlyAvailable bool) ([]*domain.Court, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
