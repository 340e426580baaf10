package update_user_tiers

import (
	"context"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/internal/service/users/models"
)

type UserService interface {
	UpdateTiers(ctx context.Context, userID string, update domain.TierUpdate) (*models.UpdateTiersResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
