package get_my_reservations

import (
	"context"

	"github.com/m04kA/TennisCourtBooking/internal/service/reservations/models"
)

type ReservationService interface {
	GetUserReservations(ctx context.Context, userID string) ([]models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
