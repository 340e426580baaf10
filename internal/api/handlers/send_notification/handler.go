package send_notification

import (
	"errors"
	"net/http"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	"github.com/m04kA/TennisCourtBooking/internal/service/notifications"
	"github.com/m04kA/TennisCourtBooking/internal/service/notifications/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMessageRequired    = "Message is required"
	msgMissingUser        = "Not authenticated"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staff, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.SendRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/notifications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Send(r.Context(), staff.Username, &req)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrEmptyMessage):
			handlers.RespondBadRequest(w, msgMessageRequired)
		default:
			h.logger.Error("POST /admin/notifications - Failed to send notification: sender=%s, error=%v", staff.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
