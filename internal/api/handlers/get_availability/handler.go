package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	getAvailability "github.com/m04kA/TennisCourtBooking/internal/usecase/get_availability"
)

const (
	msgMissingDate = "Query parameter date is required"
	msgInvalidDate = "Invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /courts/availability - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /courts/availability - Failed to get availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/availability - date=%s: %d courts, %d reservations",
		dateStr, len(result.Courts), len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
