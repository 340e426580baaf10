package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	loginUC "github.com/m04kA/TennisCourtBooking/internal/usecase/login"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingCredentials = "Username and password are required"
	msgInvalidCredentials = "Invalid credentials"
	msgTooManyAttempts    = "Too many login attempts, try again later"
)

type Handler struct {
	useCase LoginUseCase
	logger  Logger
}

func NewHandler(useCase LoginUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &loginUC.Request{
		Username: req.Username,
		Password: req.Password,
		ClientIP: middleware.ClientIP(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, loginUC.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, loginUC.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, loginUC.ErrTooManyAttempts):
			h.logger.Warn("POST /auth/login - Too many attempts: username=%s, ip=%s", req.Username, middleware.ClientIP(r))
			handlers.RespondTooManyRequests(w, msgTooManyAttempts)

		default:
			h.logger.Error("POST /auth/login - Failed to login: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User logged in: user_id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
