package toggle_court_maintenance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	"github.com/m04kA/TennisCourtBooking/internal/service/courts"
)

const (
	msgInvalidCourtID = "Invalid court ID"
	msgCourtNotFound  = "Court not found"
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

// Handle POST /api/v1/admin/courts/{courtId}/maintenance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/courts/{id}/maintenance - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	result, err := h.service.ToggleMaintenance(r.Context(), courtID)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)
		default:
			h.logger.Error("POST /admin/courts/{id}/maintenance - Failed to toggle court: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	staff, _ := middleware.GetUser(r.Context())
	if staff != nil {
		h.logger.Info("POST /admin/courts/{id}/maintenance - %s by %s", result.Message, staff.Username)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
