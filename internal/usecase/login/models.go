package login

import (
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// Request модель запроса на вход
type Request struct {
	Username string
	Password string
	ClientIP string // Адрес клиента для ограничения попыток
}

// Response выпущенный токен и профиль пользователя
type Response struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}
