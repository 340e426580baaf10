package models

import (
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// Типы событий платежного шлюза
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// Request модели

// PaymentEvent событие платежного шлюза
type PaymentEvent struct {
	Type string           `json:"type"`
	Data PaymentEventData `json:"data"`
}

// PaymentEventData обертка над объектом события
type PaymentEventData struct {
	Object PaymentEventObject `json:"object"`
}

// PaymentEventObject платежное намерение, к которому относится событие
type PaymentEventObject struct {
	ID string `json:"id"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	CourtID         int64     `json:"court_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Attendees       int       `json:"attendees"`
	TotalCost       float64   `json:"total_cost"`
	Status          string    `json:"status"`
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// PaymentEventResult результат обработки события
type PaymentEventResult struct {
	Received      bool    `json:"received"`
	ReservationID *string `json:"reservation_id,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	return &ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		CourtID:         r.CourtID,
		StartTime:       r.StartTime.UTC(),
		EndTime:         r.EndTime.UTC(),
		Attendees:       r.Attendees,
		TotalCost:       r.TotalCost,
		Status:          string(r.Status),
		PaymentIntentID: r.PaymentRef,
		CreatedAt:       r.CreatedAt.UTC(),
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, *FromDomainReservation(r))
	}
	return result
}
