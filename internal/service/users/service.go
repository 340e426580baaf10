package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	userRepo "github.com/m04kA/TennisCourtBooking/internal/infra/storage/user"
	"github.com/m04kA/TennisCourtBooking/internal/service/users/models"
)

// Service сервис управления участниками
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListMembers возвращает всех пользователей, кроме персонала
func (s *Service) ListMembers(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.userRepo.ListNonStaff(ctx)
	if err != nil {
		s.logger.Error("ListMembers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMembers - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUserList(users), nil
}

// UpdateTiers изменяет тарифы участника.
// Порядок проверок: существование, запрет на изменение персонала, наличие полей.
func (s *Service) UpdateTiers(ctx context.Context, userID string, update domain.TierUpdate) (*models.UpdateTiersResponse, error) {
	s.logger.Info("UpdateTiers: user=%s fields=%s", userID, strings.Join(update.FieldNames(), ","))

	target, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateTiers: user=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateTiers: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UpdateTiers - get user: %v", ErrInternal, err)
	}

	if target.IsStaff {
		s.logger.Warn("UpdateTiers: refusing to modify staff account user=%s", userID)
		return nil, ErrStaffAccount
	}

	if update.IsEmpty() {
		return nil, ErrNoFields
	}

	updated, err := s.userRepo.UpdateTiers(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrNoFields):
			return nil, ErrNoFields
		case errors.Is(err, userRepo.ErrUserNotFound):
			// запись удалена или стала персоналом между чтением и обновлением
			s.logger.Warn("UpdateTiers: user=%s no longer updatable", userID)
			return nil, ErrUserNotFound
		default:
			s.logger.Error("UpdateTiers: repository error for user=%s: %v", userID, err)
			return nil, fmt.Errorf("%w: UpdateTiers - update: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateTiers: user=%s tiers=%v", userID, updated.Tiers.Tiers())
	return models.NewUpdateTiersResponse(update, updated), nil
}
