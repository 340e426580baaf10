package courts

import (
	"context"
	"errors"
	"fmt"

	courtRepo "github.com/m04kA/TennisCourtBooking/internal/infra/storage/court"
	"github.com/m04kA/TennisCourtBooking/internal/service/courts/models"
)

// Service сервис для работы с кортами
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// List возвращает все корты, включая закрытые на обслуживание
func (s *Service) List(ctx context.Context) ([]models.CourtResponse, error) {
	courts, err := s.courtRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourtList(courts), nil
}

// ToggleMaintenance переключает доступность корта для бронирования.
// Существующие бронирования не затрагиваются.
func (s *Service) ToggleMaintenance(ctx context.Context, courtID int64) (*models.ToggleMaintenanceResponse, error) {
	s.logger.Info("ToggleMaintenance: toggling court=%d", courtID)

	court, err := s.courtRepo.ToggleAvailability(ctx, courtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("ToggleMaintenance: court=%d not found", courtID)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("ToggleMaintenance: repository error for court=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: ToggleMaintenance - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleMaintenance: court=%d available=%t", court.ID, court.Available)
	return models.NewToggleMaintenanceResponse(court), nil
}
