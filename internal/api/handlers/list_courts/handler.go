package list_courts

import (
	"net/http"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/service/courts/models"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type listResponse struct {
	Courts []models.CourtResponse `json:"courts"`
}

// Handle GET /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courts, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listResponse{Courts: courts})
}
