package list_reservations

import (
	"context"

	"github.com/m04kA/TennisCourtBooking/internal/service/reservations/models"
)

type ReservationService interface {
	GetAllReservations(ctx context.Context) ([]models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
