package middleware

import (
	"context"
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/pkg/tokens"
)

// TokenParser проверяет токен доступа
type TokenParser interface {
	Parse(raw string) (*tokens.Claims, error)
}

// UserLoader загружает актуальную запись пользователя
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// HTTPMetrics интерфейс метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
