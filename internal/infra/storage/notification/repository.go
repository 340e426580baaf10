package notification

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/pkg/dbmetrics"
	"github.com/m04kA/TennisCourtBooking/pkg/pgerrors"
	"github.com/m04kA/TennisCourtBooking/pkg/psqlbuilder"
)

// Repository репозиторий уведомлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("id", "message", "sender").
		Values(n.ID, n.Message, n.Sender).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return n, nil
}

// ListUnread возвращает непрочитанные пользователем уведомления, новые первыми
func (r *Repository) ListUnread(ctx context.Context, userID string, limit int) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("n.id", "n.message", "n.sender", "n.created_at").
		From("notifications n").
		Where(squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM notification_reads nr WHERE nr.notification_id = n.id AND nr.user_id = ?)",
			userID,
		)).
		OrderBy("n.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUnread - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUnread - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.Sender, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListUnread - scan notification: %v", ErrScanRow, err)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUnread - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkRead отмечает уведомление прочитанным. Повторная отметка не является ошибкой.
func (r *Repository) MarkRead(ctx context.Context, notificationID, userID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notification_reads").
		Columns("notification_id", "user_id").
		Values(notificationID, userID).
		Suffix("ON CONFLICT (notification_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerrors.Is(err, pgerrors.ForeignKeyViolation) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("%w: MarkRead - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
