package list_reservations

import (
	"net/http"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/service/reservations/models"
)

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

// Handle GET /api/v1/admin/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetAllReservations(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/reservations - Failed to get reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reservations - %d reservations", len(list))
	handlers.RespondJSON(w, http.StatusOK, listResponse{Reservations: list})
}
