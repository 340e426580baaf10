package models

import "github.com/m04kA/TennisCourtBooking/internal/domain"

// AnalyticsResponse сводные показатели клуба
type AnalyticsResponse struct {
	TotalReservations     int64   `json:"total_reservations"`
	ConfirmedReservations int64   `json:"confirmed_reservations"`
	TotalRevenue          float64 `json:"total_revenue"`
	TotalUsers            int64   `json:"total_users"`
}

// FromDomainAnalytics конвертирует domain модель в DTO
func FromDomainAnalytics(a *domain.Analytics) *AnalyticsResponse {
	return &AnalyticsResponse{
		TotalReservations:     a.TotalReservations,
		ConfirmedReservations: a.ConfirmedReservations,
		TotalRevenue:          a.TotalRevenue,
		TotalUsers:            a.TotalUsers,
	}
}
