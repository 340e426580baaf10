package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	createReservation "github.com/m04kA/TennisCourtBooking/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CourtID   int64  `json:"court_id"`
	StartTime string `json:"start_time"` // ISO-8601, без зоны трактуется как UTC
	EndTime   string `json:"end_time"`
	Attendees int    `json:"attendees"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ReservationID   string    `json:"reservation_id"`
	ClientSecret    string    `json:"client_secret"`
	TotalCost       float64   `json:"total_cost"`
	PaymentIntentID string    `json:"payment_intent_id"`
	CourtID         int64     `json:"court_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Attendees       int       `json:"attendees"`
	Pricing         string    `json:"pricing"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(user *domain.User) (*createReservation.Request, error) {
	start, err := domain.ParseTimestamp(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start_time: %w", err)
	}
	end, err := domain.ParseTimestamp(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end_time: %w", err)
	}

	return &createReservation.Request{
		User:      user,
		CourtID:   r.CourtID,
		StartTime: start,
		EndTime:   end,
		Attendees: r.Attendees,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ReservationID:   resp.ReservationID,
		ClientSecret:    resp.ClientSecret,
		TotalCost:       resp.TotalCost,
		PaymentIntentID: resp.PaymentRef,
		CourtID:         resp.CourtID,
		StartTime:       resp.StartTime.UTC(),
		EndTime:         resp.EndTime.UTC(),
		Attendees:       resp.Attendees,
		Pricing:         resp.Pricing,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.UTC(),
	}
}
