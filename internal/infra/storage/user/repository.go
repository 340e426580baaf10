package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/pkg/dbmetrics"
	"github.com/m04kA/TennisCourtBooking/pkg/psqlbuilder"
)

var userColumns = []string{
	"id",
	"username",
	"email",
	"password_hash",
	"is_resident",
	"is_alta_member",
	"is_usta_member",
	"is_staff",
	"created_at",
	"updated_at",
}

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateIfNotExists добавляет пользователя, если имя еще не занято.
// Возвращает true, если строка была вставлена.
func (r *Repository) CreateIfNotExists(ctx context.Context, user *domain.User) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"id",
			"username",
			"email",
			"password_hash",
			"is_resident",
			"is_alta_member",
			"is_usta_member",
			"is_staff",
		).
		Values(
			user.ID,
			user.Username,
			user.Email,
			user.PasswordHash,
			user.Tiers.Resident,
			user.Tiers.ALTA,
			user.Tiers.USTA,
			user.IsStaff,
		).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfNotExists - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfNotExists - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfNotExists - get rows affected: %v", ErrExecQuery, err)
	}

	return affected > 0, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByUsername получает пользователя по имени
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, "GetByUsername", squirrel.Eq{"username": username})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	return user, nil
}

// ListNonStaff возвращает всех участников клуба без флага персонала
func (r *Repository) ListNonStaff(ctx context.Context) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"is_staff": false}).
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListNonStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListNonStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListNonStaff - scan user: %v", ErrScanRow, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListNonStaff - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}

// CountNonStaff возвращает количество участников клуба
func (r *Repository) CountNonStaff(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"is_staff": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountNonStaff - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountNonStaff - scan: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateTiers частично обновляет флаги тарифов.
// Обновляются только переданные поля, запись персонала не изменяется.
func (r *Repository) UpdateTiers(ctx context.Context, id string, update domain.TierUpdate) (*domain.User, error) {
	if update.IsEmpty() {
		return nil, ErrNoFields
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("users").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_staff": false}).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))

	if update.Resident != nil {
		builder = builder.Set("is_resident", *update.Resident)
	}
	if update.ALTA != nil {
		builder = builder.Set("is_alta_member", *update.ALTA)
	}
	if update.USTA != nil {
		builder = builder.Set("is_usta_member", *update.USTA)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateTiers - build update query: %v", ErrBuildQuery, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateTiers - execute update: %v", ErrExecQuery, err)
	}

	return user, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Tiers.Resident,
		&user.Tiers.ALTA,
		&user.Tiers.USTA,
		&user.IsStaff,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time
	return &user, nil
}
