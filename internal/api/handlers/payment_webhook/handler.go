package payment_webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/service/reservations"
	"github.com/m04kA/TennisCourtBooking/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidSignature   = "Invalid signature"
	msgMissingIntentID    = "data.object.id is required"
	msgNotFound           = "Reservation not found for payment"
	msgInvalidTransition  = "Reservation status does not allow this payment event"

	maxEventBytes = 64 << 10
)

type Handler struct {
	service ReservationService
	secret  string
	logger  Logger
}

// NewHandler создает обработчик событий оплаты. Пустой secret отключает проверку подписи.
func NewHandler(service ReservationService, secret string, logger Logger) *Handler {
	return &Handler{
		service: service,
		secret:  secret,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/webhook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBytes))
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if h.secret != "" && !VerifySignature(h.secret, body, r.Header.Get(SignatureHeader)) {
		h.logger.Warn("POST /payments/webhook - Invalid signature from %s", r.RemoteAddr)
		handlers.RespondUnauthorized(w, msgInvalidSignature)
		return
	}

	var event models.PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.Warn("POST /payments/webhook - Invalid event payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.HandlePaymentEvent(r.Context(), &event)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingIntentID)

		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /payments/webhook - Failed to handle event: type=%s, error=%v", event.Type, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
