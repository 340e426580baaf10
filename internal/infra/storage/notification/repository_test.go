package notification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications (id,message,sender) VALUES ($1,$2,$3) RETURNING created_at")).
		WithArgs("n-1", "Courts 5 and 6 closed", "AlpharettaStaff1122").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	n, err := repo.Create(context.Background(), &domain.Notification{ID: "n-1", Message: "Courts 5 and 6 closed", Sender: "AlpharettaStaff1122"})
	require.NoError(t, err)
	assert.Equal(t, now, n.CreatedAt)
}

func TestListUnread(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM notifications n WHERE NOT EXISTS (SELECT 1 FROM notification_reads nr WHERE nr.notification_id = n.id AND nr.user_id = $1) ORDER BY n.created_at DESC LIMIT 10")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "message", "sender", "created_at"}).
			AddRow("n-2", "newer", "staff", now).
			AddRow("n-1", "older", "staff", now.Add(-time.Hour)))

	list, err := repo.ListUnread(context.Background(), "u-1", domain.NotificationInboxLimit)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n-2", list[0].ID)
}

func TestMarkRead_Idempotent(t *testing.T) {
	repo, mock := newRepo(t)

	for i := 0; i < 2; i++ {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notification_reads (notification_id,user_id) VALUES ($1,$2) ON CONFLICT (notification_id, user_id) DO NOTHING")).
			WithArgs("n-1", "u-1").
			WillReturnResult(sqlmock.NewResult(0, int64(1-i)))
	}

	require.NoError(t, repo.MarkRead(context.Background(), "n-1", "u-1"))
	require.NoError(t, repo.MarkRead(context.Background(), "n-1", "u-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead_UnknownNotification(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("INSERT INTO notification_reads").
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.MarkRead(context.Background(), "missing", "u-1")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
