package users

import (
	"context"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListNonStaff(ctx context.Context) ([]*domain.User, error)
	UpdateTiers(ctx context.Context, id string, update domain.TierUpdate) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
