package get_availability

import (
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// Request модель запроса доступности
type Request struct {
	Date time.Time // Календарный день (UTC)
}

// Response доступные корты и активные бронирования, пересекающие день
type Response struct {
	Date         time.Time
	Courts       []*domain.Court
	Reservations []*domain.Reservation
}
