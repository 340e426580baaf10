package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/pkg/dbmetrics"
	"github.com/m04kA/TennisCourtBooking/pkg/psqlbuilder"
)

var courtColumns = []string{"id", "name", "available", "created_at", "updated_at"}

// Repository репозиторий кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает корт по ID.
// Внутри транзакции строка блокируется FOR SHARE, чтобы перевод корта
// на обслуживание не прошел параллельно с созданием бронирования.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR SHARE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	court, err := scanCourt(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	return court, nil
}

// List возвращает корты, упорядоченные по ID.
// onlyAvailable исключает корты на обслуживании.
func (r *Repository) List(ctx context.Context, onlyAvailable bool) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(courtColumns...).
		From("courts").
		OrderBy("id ASC")

	if onlyAvailable {
		builder = builder.Where(squirrel.Eq{"available": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan court: %v", ErrScanRow, err)
		}
		courts = append(courts, court)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// ToggleAvailability переключает флаг доступности корта и возвращает новое состояние
func (r *Repository) ToggleAvailability(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
		Set("available", squirrel.Expr("NOT available")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, available, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ToggleAvailability - build update query: %v", ErrBuildQuery, err)
	}

	court, err := scanCourt(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ToggleAvailability - execute update: %v", ErrExecQuery, err)
	}

	return court, nil
}

// CreateIfNotExists добавляет корт, если корта с таким ID еще нет.
// Возвращает true, если строка была вставлена.
func (r *Repository) CreateIfNotExists(ctx context.Context, court *domain.Court) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courts").
		Columns("id", "name", "available").
		Values(court.ID, court.Name, court.Available).
		Suffix("ON CONFLICT (id) DO NOTHING").
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

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCourt(row rowScanner) (*domain.Court, error) {
	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&court.ID, &court.Name, &court.Available, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time
	return &court, nil
}
