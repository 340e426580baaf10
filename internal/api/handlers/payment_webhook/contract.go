package payment_webhook

import (
	"context"

	"github.com/m04kA/TennisCourtBooking/internal/service/reservations/models"
)

type ReservationService interface {
	HandlePaymentEvent(ctx context.Context, event *models.PaymentEvent) (*models.PaymentEventResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
