package get_my_reservations

import (
	"net/http"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	"github.com/m04kA/TennisCourtBooking/internal/service/reservations/models"
)

const msgMissingUser = "Not authenticated"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type listResponse struct {
	Reservations []models.ReservationResponse `json:"reservations"`
}

// Handle GET /api/v1/reservations/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	list, err := h.service.GetUserReservations(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("GET /reservations/my - Failed to get reservations: user_id=%s, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listResponse{Reservations: list})
}
