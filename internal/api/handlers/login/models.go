package login

import (
	"time"

	userModels "github.com/m04kA/TennisCourtBooking/internal/service/users/models"
	loginUC "github.com/m04kA/TennisCourtBooking/internal/usecase/login"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string                   `json:"token"`
	ExpiresAt time.Time                `json:"expires_at"`
	User      *userModels.UserResponse `json:"user"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *loginUC.Response) *LoginResponse {
	return &LoginResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.UTC(),
		User:      userModels.FromDomainUser(resp.User),
	}
}
