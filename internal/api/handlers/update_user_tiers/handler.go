package update_user_tiers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/service/users"
	"github.com/m04kA/TennisCourtBooking/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgUserNotFound       = "User not found"
	msgStaffAccount       = "Cannot modify staff accounts"
	msgNoFields           = "No valid fields to update"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	// Пустое тело допустимо: сервис сначала проверит цель, затем наличие полей
	var req models.UpdateTiersRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PUT /admin/users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateTiers(r.Context(), userID, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, users.ErrStaffAccount):
			handlers.RespondForbidden(w, msgStaffAccount)

		case errors.Is(err, users.ErrNoFields):
			handlers.RespondBadRequest(w, msgNoFields)

		default:
			h.logger.Error("PUT /admin/users/{id} - Failed to update user: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/users/{id} - User updated: user_id=%s, fields=%v", userID, result.UpdatedFields)
	handlers.RespondJSON(w, http.StatusOK, result)
}
