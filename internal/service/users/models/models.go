package models

import (
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// Request модели

// UpdateTiersRequest частичное обновление тарифов участника.
// Отсутствующие в теле поля не изменяются.
type UpdateTiersRequest struct {
	IsResident   *bool `json:"is_resident"`
	IsALTAMember *bool `json:"is_alta_member"`
	IsUSTAMember *bool `json:"is_usta_member"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateTiersRequest) ToDomain() domain.TierUpdate {
	return domain.TierUpdate{
		Resident: r.IsResident,
		ALTA:     r.IsALTAMember,
		USTA:     r.IsUSTAMember,
	}
}

// Response модели

// UserResponse данные пользователя без хеша пароля
type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	IsResident   bool      `json:"is_resident"`
	IsALTAMember bool      `json:"is_alta_member"`
	IsUSTAMember bool      `json:"is_usta_member"`
	IsStaff      bool      `json:"is_staff"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateTiersResponse ответ на обновление тарифов
type UpdateTiersResponse struct {
	Message       string          `json:"message"`
	UpdatedFields map[string]bool `json:"updated_fields"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		IsResident:   u.Tiers.Resident,
		IsALTAMember: u.Tiers.ALTA,
		IsUSTAMember: u.Tiers.USTA,
		IsStaff:      u.IsStaff,
		CreatedAt:    u.CreatedAt.UTC(),
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, *FromDomainUser(u))
	}
	return result
}

// NewUpdateTiersResponse перечисляет примененные поля с их новыми значениями
func NewUpdateTiersResponse(update domain.TierUpdate, user *domain.User) *UpdateTiersResponse {
	fields := make(map[string]bool, 3)
	if update.Resident != nil {
		fields["is_resident"] = user.Tiers.Resident
	}
	if update.ALTA != nil {
		fields["is_alta_member"] = user.Tiers.ALTA
	}
	if update.USTA != nil {
		fields["is_usta_member"] = user.Tiers.USTA
	}
	return &UpdateTiersResponse{
		Message:       "User updated successfully",
		UpdatedFields: fields,
	}
}
