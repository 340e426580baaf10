package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/pkg/dbmetrics"
	"github.com/m04kA/TennisCourtBooking/pkg/pgerrors"
	"github.com/m04kA/TennisCourtBooking/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"user_id",
	"court_id",
	"start_time",
	"end_time",
	"attendees",
	"total_cost",
	"status",
	"payment_ref",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование.
// Пересечение с активным бронированием того же корта отклоняется ограничением
// reservations_no_overlap и возвращается как ErrTimeConflict.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"user_id",
			"court_id",
			"start_time",
			"end_time",
			"attendees",
			"total_cost",
			"status",
			"payment_ref",
		).
		Values(
			reservation.ID,
			reservation.UserID,
			reservation.CourtID,
			reservation.StartTime,
			reservation.EndTime,
			reservation.Attendees,
			reservation.TotalCost,
			reservation.Status,
			reservation.PaymentRef,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	switch {
	case pgerrors.Is(err, pgerrors.ExclusionViolation):
		return nil, ErrTimeConflict
	case pgerrors.Is(err, pgerrors.UniqueViolation):
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, pgerrors.Constraint(err))
	case err != nil:
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByPaymentRef получает бронирование по платежной ссылке
func (r *Repository) GetByPaymentRef(ctx context.Context, paymentRef string) (*domain.Reservation, error) {
	return r.getOne(ctx, "GetByPaymentRef", squirrel.Eq{"payment_ref": paymentRef})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
	}

	return reservation, nil
}

// FindOverlapping возвращает активные бронирования корта, пересекающие [start, end).
// Соседние интервалы (конец одного равен началу другого) не пересекаются.
func (r *Repository) FindOverlapping(ctx context.Context, courtID int64, start, end time.Time) ([]*domain.Reservation, error) {
	return r.List(ctx, domain.ReservationFilter{
		CourtID:    &courtID,
		From:       &start,
		To:         &end,
		ActiveOnly: true,
	})
}

// List получает бронирования по фильтру, упорядоченные по времени начала
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("start_time ASC", "court_id ASC")

	if filter.UserID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.CourtID != nil {
		builder = builder.Where(squirrel.Eq{"court_id": *filter.CourtID})
	}
	// Пересечение полуинтервалов: start < To AND end > From
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"start_time": *filter.To})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.Gt{"end_time": *filter.From})
	}
	if filter.ActiveOnly {
		builder = builder.Where(squirrel.Eq{"status": activeStatuses()})
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

	return scanReservations(rows)
}

// UpdateStatus переводит бронирование в статус to, только если текущий статус входит в from
func (r *Repository) UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(from)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.Is(err, pgerrors.ExclusionViolation) {
			return ErrTimeConflict
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrStatusTransition
	}

	return nil
}

// CancelPendingCreatedBefore отменяет неоплаченные бронирования, созданные раньше deadline
func (r *Repository) CancelPendingCreatedBefore(ctx context.Context, deadline time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Lt{"created_at": deadline}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelPendingCreatedBefore - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelPendingCreatedBefore - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelPendingCreatedBefore - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// Stats возвращает счетчики для аналитики: всего бронирований, подтвержденных и выручку по подтвержденным
func (r *Repository) Stats(ctx context.Context) (total int64, confirmed int64, revenue float64, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'confirmed')",
		"COALESCE(SUM(total_cost) FILTER (WHERE status = 'confirmed'), 0)",
	).
		From("reservations").
		ToSql()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: Stats - build select query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total, &confirmed, &revenue); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: Stats - scan: %v", ErrScanRow, err)
	}

	return total, confirmed, revenue, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.CourtID,
		&res.StartTime,
		&res.EndTime,
		&res.Attendees,
		&res.TotalCost,
		&res.Status,
		&res.PaymentRef,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.StartTime = res.StartTime.UTC()
	res.EndTime = res.EndTime.UTC()
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}
	return reservations, nil
}

func activeStatuses() []string {
	return statusStrings(domain.ActiveStatuses)
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
