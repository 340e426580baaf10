// Package seed loads bootstrap courts and accounts from a YAML file.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/pkg/password"
)

var (
	ErrReadFile    = errors.New("seed: failed to read file")
	ErrDecode      = errors.New("seed: failed to decode file")
	ErrInvalidData = errors.New("seed: invalid data")
	ErrApply       = errors.New("seed: failed to apply")
)

// Data содержимое seed-файла
type Data struct {
	Courts []Court   `yaml:"courts"`
	Users  []Account `yaml:"users"`
}

// Court корт для начального наполнения
type Court struct {
	ID        int64  `yaml:"id"`
	Name      string `yaml:"name"`
	Available bool   `yaml:"available"`
}

// Account учетная запись для начального наполнения
type Account struct {
	Username     string `yaml:"username"`
	Email        string `yaml:"email"`
	Password     string `yaml:"password"`
	IsResident   bool   `yaml:"is_resident"`
	IsALTAMember bool   `yaml:"is_alta_member"`
	IsUSTAMember bool   `yaml:"is_usta_member"`
	IsStaff      bool   `yaml:"is_staff"`
}

// CourtCreator создает корт, если его еще нет
type CourtCreator interface {
	CreateIfNotExists(ctx context.Context, court *domain.Court) (bool, error)
}

// UserCreator создает пользователя, если имя свободно
type UserCreator interface {
	CreateIfNotExists(ctx context.Context, user *domain.User) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Load читает и проверяет seed-файл
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}
	return Parse(raw)
}

// Parse разбирает YAML и проверяет записи
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *Data) validate() error {
	courtIDs := make(map[int64]struct{}, len(d.Courts))
	for _, c := range d.Courts {
		if c.ID <= 0 {
			return fmt.Errorf("%w: court id must be positive, got %d", ErrInvalidData, c.ID)
		}
		if _, dup := courtIDs[c.ID]; dup {
			return fmt.Errorf("%w: duplicate court id %d", ErrInvalidData, c.ID)
		}
		courtIDs[c.ID] = struct{}{}
	}

	usernames := make(map[string]struct{}, len(d.Users))
	for _, u := range d.Users {
		if strings.TrimSpace(u.Username) == "" || u.Password == "" {
			return fmt.Errorf("%w: username and password are required", ErrInvalidData)
		}
		if _, dup := usernames[u.Username]; dup {
			return fmt.Errorf("%w: duplicate username %q", ErrInvalidData, u.Username)
		}
		usernames[u.Username] = struct{}{}
	}
	return nil
}

// Apply записывает корты и учетные записи. Существующие записи не изменяются,
// поэтому повторный запуск безопасен.
func Apply(ctx context.Context, data *Data, courts CourtCreator, users UserCreator, logger Logger) error {
	var courtsCreated, usersCreated int

	for _, c := range data.Courts {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Court %d", c.ID)
		}
		created, err := courts.CreateIfNotExists(ctx, &domain.Court{ID: c.ID, Name: name, Available: c.Available})
		if err != nil {
			return fmt.Errorf("%w: court %d: %v", ErrApply, c.ID, err)
		}
		if created {
			courtsCreated++
		}
	}

	for _, a := range data.Users {
		hash, err := password.Hash(a.Password)
		if err != nil {
			return fmt.Errorf("%w: hash password for %s: %v", ErrApply, a.Username, err)
		}
		user := &domain.User{
			ID:           uuid.New().String(),
			Username:     a.Username,
			Email:        a.Email,
			PasswordHash: hash,
			Tiers: domain.TierSet{
				Resident: a.IsResident,
				ALTA:     a.IsALTAMember,
				USTA:     a.IsUSTAMember,
			},
			IsStaff: a.IsStaff,
		}
		created, err := users.CreateIfNotExists(ctx, user)
		if err != nil {
			return fmt.Errorf("%w: user %s: %v", ErrApply, a.Username, err)
		}
		if created {
			usersCreated++
		}
	}

	logger.Info("Seed applied: courts created=%d of %d, users created=%d of %d",
		courtsCreated, len(data.Courts), usersCreated, len(data.Users))
	return nil
}
