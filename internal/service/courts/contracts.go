package courts

import (
	"context"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	List(ctx context.Context, onlyAvailable bool) ([]*domain.Court, error)
	ToggleAvailability(ctx context.Context, id int64) (*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
