package mark_notification_read

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	"github.com/m04kA/TennisCourtBooking/internal/service/notifications"
)

const (
	msgMissingUser = "Not authenticated"
	msgNotFound    = "Notification not found"
	msgMarkedRead  = "Notification marked as read"
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

// Handle POST /api/v1/notifications/{notificationId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	notificationID := mux.Vars(r)["notificationId"]

	if err := h.service.MarkRead(r.Context(), notificationID, user.ID); err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("POST /notifications/{id}/read - Failed to mark read: notification_id=%s, user_id=%s, error=%v",
				notificationID, user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgMarkedRead})
}
