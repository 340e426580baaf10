package get_availability

import (
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	courtModels "github.com/m04kA/TennisCourtBooking/internal/service/courts/models"
	reservationModels "github.com/m04kA/TennisCourtBooking/internal/service/reservations/models"
	getAvailability "github.com/m04kA/TennisCourtBooking/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date         string                                  `json:"date"`
	Courts       []courtModels.CourtResponse             `json:"courts"`
	Reservations []reservationModels.ReservationResponse `json:"reservations"`
}

// ParseDate принимает календарную дату или полную метку времени и возвращает начало дня UTC
func ParseDate(value string) (time.Time, error) {
	if d, err := time.Parse(domain.DateFormat, value); err == nil {
		return d, nil
	}
	t, err := domain.ParseTimestamp(value)
	if err != nil {
		return time.Time{}, err
	}
	return domain.StartOfDay(t), nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Courts:       courtModels.FromDomainCourtList(resp.Courts),
		Reservations: reservationModels.FromDomainReservationList(resp.Reservations),
	}
}
