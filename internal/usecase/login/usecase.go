package login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "github.com/m04kA/TennisCourtBooking/internal/infra/storage/user"
	"github.com/m04kA/TennisCourtBooking/pkg/password"
)

// UseCase use case входа по имени и паролю
type UseCase struct {
	userRepo UserRepository
	tokens   TokenIssuer
	limiter  AttemptLimiter
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	tokens TokenIssuer,
	limiter AttemptLimiter,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo: userRepo,
		tokens:   tokens,
		limiter:  limiter,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute проверяет учетные данные и выпускает токен.
// Неизвестное имя и неверный пароль неразличимы для клиента.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		uc.metrics.RecordLogin("invalid_input")
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	// 2. Ограничение частоты попыток. Недоступность хранилища лимитов не блокирует вход.
	key := strings.ToLower(username) + "|" + req.ClientIP
	allowed, err := uc.limiter.Allow(ctx, key)
	if err != nil {
		uc.logger.Error("Login: limiter unavailable, allowing attempt for %s: %v", username, err)
		allowed = true
	}
	if !allowed {
		uc.logger.Warn("Login: too many attempts for username=%s from %s", username, req.ClientIP)
		uc.metrics.RecordLogin("throttled")
		return nil, ErrTooManyAttempts
	}

	// 3. Поиск пользователя
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("Login: unknown username=%s", username)
			uc.metrics.RecordLogin("failure")
			return nil, ErrInvalidCredentials
		}
		uc.logger.Error("Login: failed to get user %s: %v", username, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 4. Проверка пароля
	if err := password.Verify(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			uc.logger.Error("Login: malformed password hash for user id=%s: %v", user.ID, err)
		}
		uc.logger.Warn("Login: wrong password for username=%s", username)
		uc.metrics.RecordLogin("failure")
		return nil, ErrInvalidCredentials
	}

	// 5. Выпуск токена
	token, expiresAt, err := uc.tokens.Issue(user.ID, user.Username, user.IsStaff)
	if err != nil {
		uc.logger.Error("Login: failed to issue token for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: failed to issue token: %v", ErrInternal, err)
	}

	uc.metrics.RecordLogin("success")
	uc.logger.Info("Login: user id=%s (%s) logged in, staff=%t", user.ID, user.Username, user.IsStaff)

	return &Response{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
