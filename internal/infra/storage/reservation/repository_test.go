package reservation

import (
	"context"
	"errors"
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

func at(day, hour int) time.Time {
	return time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC)
}

func newReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:         "9b2f7c1e-0000-4000-8000-000000000001",
		UserID:     "7d1c1c1e-0000-4000-8000-000000000002",
		CourtID:    1,
		StartTime:  at(10, 14),
		EndTime:    at(10, 16),
		Attendees:  4,
		TotalCost:  12,
		Status:     domain.StatusConfirmed,
		PaymentRef: "demo_payment_9b2f7c1e",
	}
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows(reservationColumns)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	r := newReservation()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations (id,user_id,court_id,start_time,end_time,attendees,total_cost,status,payment_ref) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING created_at, updated_at")).
		WithArgs(r.ID, r.UserID, r.CourtID, r.StartTime, r.EndTime, r.Attendees, r.TotalCost, "confirmed", r.PaymentRef).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExclusionViolationIsTimeConflict(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO reservations").
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "reservations_no_overlap"})

	_, err := repo.Create(context.Background(), newReservation())
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO reservations").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "reservations_payment_ref_key"})

	_, err := repo.Create(context.Background(), newReservation())
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NotErrorIs(t, err, ErrTimeConflict)
}

func TestCreate_OtherError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO reservations").WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), newReservation())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestFindOverlapping_UsesHalfOpenPredicate(t *testing.T) {
	repo, mock := newRepo(t)
	r := newReservation()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE court_id = $1 AND start_time < $2 AND end_time > $3 AND status IN ($4,$5) ORDER BY start_time ASC, court_id ASC")).
		WithArgs(int64(1), at(10, 17), at(10, 15), "pending", "confirmed").
		WillReturnRows(reservationRows().AddRow(
			r.ID, r.UserID, r.CourtID, r.StartTime, r.EndTime, r.Attendees, r.TotalCost, "confirmed", r.PaymentRef, now, now,
		))

	found, err := repo.FindOverlapping(context.Background(), 1, at(10, 15), at(10, 17))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, domain.StatusConfirmed, found[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ByUser(t *testing.T) {
	repo, mock := newRepo(t)
	userID := "7d1c1c1e-0000-4000-8000-000000000002"

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE user_id = $1 ORDER BY start_time ASC")).
		WithArgs(userID).
		WillReturnRows(reservationRows())

	found, err := repo.List(context.Background(), domain.ReservationFilter{UserID: &userID})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestGetByPaymentRef_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE payment_ref = $1")).
		WithArgs("demo_payment_missing").
		WillReturnRows(reservationRows())

	_, err := repo.GetByPaymentRef(context.Background(), "demo_payment_missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2 AND status IN ($3)")).
		WithArgs("confirmed", "res-1", "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "res-1", []domain.ReservationStatus{domain.StatusPending}, domain.StatusConfirmed)
	require.NoError(t, err)
}

func TestUpdateStatus_NoMatchingRow(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("UPDATE reservations").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "res-1", []domain.ReservationStatus{domain.StatusPending}, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrStatusTransition)
}

func TestCancelPendingCreatedBefore(t *testing.T) {
	repo, mock := newRepo(t)
	deadline := at(10, 12)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = $1, updated_at = NOW() WHERE status = $2 AND created_at < $3")).
		WithArgs("cancelled", "pending", deadline).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.CancelPendingCreatedBefore(context.Background(), deadline)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestStats(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FILTER (WHERE status = 'confirmed')")).
		WillReturnRows(sqlmock.NewRows([]string{"total", "confirmed", "revenue"}).AddRow(int64(5), int64(3), 54.0))

	total, confirmed, revenue, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, int64(3), confirmed)
	assert.Equal(t, 54.0, revenue)
}
