package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	createReservation "github.com/m04kA/TennisCourtBooking/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody    = "Invalid request body"
	msgInvalidTimestamp      = "Invalid start_time or end_time, expected ISO-8601"
	msgInvalidInput          = "Invalid reservation request"
	msgMissingUser           = "Not authenticated"
	msgCourtUnavailable      = "Court not available for reservation"
	msgDurationTooShort      = "Minimum reservation time is 2 hours"
	msgTooManyAttendees      = "Maximum 20 attendees per court"
	msgResidentWindow        = "Residents cannot book more than 7 days in advance"
	msgNonResidentWindow     = "Non-residents cannot book more than 5 days in advance"
	msgTimeConflict          = "Court is already reserved for this time"
	msgPaymentNotInitialized = "Payment could not be initialized"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(user)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: user_id=%s, error=%v", user.ID, err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrCourtUnavailable):
			handlers.RespondBadRequest(w, msgCourtUnavailable)

		case errors.Is(err, createReservation.ErrDurationTooShort):
			handlers.RespondBadRequest(w, msgDurationTooShort)

		case errors.Is(err, createReservation.ErrTooManyAttendees):
			handlers.RespondBadRequest(w, msgTooManyAttendees)

		case errors.Is(err, createReservation.ErrAdvanceWindowExceeded):
			if user.Tiers.Resident {
				handlers.RespondBadRequest(w, msgResidentWindow)
			} else {
				handlers.RespondBadRequest(w, msgNonResidentWindow)
			}

		case errors.Is(err, createReservation.ErrTimeConflict):
			handlers.RespondBadRequest(w, msgTimeConflict)

		case errors.Is(err, createReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrPaymentFailed):
			h.logger.Warn("POST /reservations - Payment declined: user_id=%s, court_id=%d", user.ID, req.CourtID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentNotInitialized)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, court_id=%d, error=%v",
				user.ID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, user_id=%s, court_id=%d, total_cost=%.2f",
		result.ReservationID, user.ID, result.CourtID, result.TotalCost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
