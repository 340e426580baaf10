package list_notifications

import (
	"net/http"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	"github.com/m04kA/TennisCourtBooking/internal/service/notifications/models"
)

const msgMissingUser = "Not authenticated"

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

type listResponse struct {
	Notifications []models.NotificationResponse `json:"notifications"`
}

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	list, err := h.service.ListUnread(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to list notifications: user_id=%s, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listResponse{Notifications: list})
}
