package models

import (
	"fmt"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// ToggleMaintenanceResponse ответ на переключение обслуживания корта
type ToggleMaintenanceResponse struct {
	Message   string `json:"message"`
	CourtID   int64  `json:"court_id"`
	Available bool   `json:"available"`
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}
	return &CourtResponse{ID: c.ID, Name: c.Name, Available: c.Available}
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) []CourtResponse {
	result := make([]CourtResponse, 0, len(courts))
	for _, c := range courts {
		result = append(result, *FromDomainCourt(c))
	}
	return result
}

// NewToggleMaintenanceResponse формирует ответ по новому состоянию корта
func NewToggleMaintenanceResponse(c *domain.Court) *ToggleMaintenanceResponse {
	state := "disabled"
	if c.Available {
		state = "enabled"
	}
	return &ToggleMaintenanceResponse{
		Message:   fmt.Sprintf("Court %d %s", c.ID, state),
		CourtID:   c.ID,
		Available: c.Available,
	}
}
