package login

import (
	"context"
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TokenIssuer выпускает токены доступа
type TokenIssuer interface {
	Issue(userID, username string, isStaff bool) (string, time.Time, error)
}

// AttemptLimiter ограничивает частоту попыток входа
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Metrics интерфейс счетчиков входа
type Metrics interface {
	RecordLogin(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
