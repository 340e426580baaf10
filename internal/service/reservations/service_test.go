package reservations

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	reservationRepo "github.com/m04kA/TennisCourtBooking/internal/infra/storage/reservation"
	"github.com/m04kA/TennisCourtBooking/internal/service/reservations/models"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if r := args.Get(0); r != nil {
		return r.([]*domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetByPaymentRef(ctx context.Context, ref string) (*domain.Reservation, error) {
	args := m.Called(ctx, ref)
	if r := args.Get(0); r != nil {
		return r.(*domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
}

func (m *mockRepo) CancelPendingCreatedBefore(ctx context.Context, deadline time.Time) (int64, error) {
	args := m.Called(ctx, deadline)
	return args.Get(0).(int64), args.Error(1)
}

type mockExporter struct{ mock.Mock }

func (m *mockExporter) WriteReservations(w io.Writer, list []*domain.Reservation) error {
	return m.Called(w, list).Error(0)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) RecordHoldsExpired(n int64) { m.Called(n) }

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *mockRepo, exporter *mockExporter, metrics *mockMetrics) *Service {
	return NewService(repo, exporter, passthroughTx{}, metrics, nopLogger{})
}

func paymentEvent(eventType, ref string) *models.PaymentEvent {
	return &models.PaymentEvent{Type: eventType, Data: models.PaymentEventData{Object: models.PaymentEventObject{ID: ref}}}
}

func TestGetUserReservations_FiltersByUser(t *testing.T) {
	repo := &mockRepo{}
	start := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.ReservationFilter) bool {
		return f.UserID != nil && *f.UserID == "u-1" && !f.ActiveOnly
	})).Return([]*domain.Reservation{
		{ID: "r-1", UserID: "u-1", CourtID: 2, StartTime: start, EndTime: start.Add(2 * time.Hour), TotalCost: 8, Status: domain.StatusConfirmed, PaymentRef: "demo_payment_x"},
	}, nil)

	svc := newTestService(repo, &mockExporter{}, &mockMetrics{})
	list, err := svc.GetUserReservations(context.Background(), "u-1")

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r-1", list[0].ID)
	assert.Equal(t, "demo_payment_x", list[0].PaymentIntentID)
	assert.Equal(t, "confirmed", list[0].Status)
	repo.AssertExpectations(t)
}

func TestGetAllReservations_EmptyIsNotNil(t *testing.T) {
	repo := &mockRepo{}
	repo.On("List", mock.Anything, domain.ReservationFilter{}).Return([]*domain.Reservation{}, nil)

	list, err := newTestService(repo, &mockExporter{}, &mockMetrics{}).GetAllReservations(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestGetAllReservations_RepositoryError(t *testing.T) {
	repo := &mockRepo{}
	repo.On("List", mock.Anything, domain.ReservationFilter{}).Return(nil, errors.New("boom"))

	_, err := newTestService(repo, &mockExporter{}, &mockMetrics{}).GetAllReservations(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExportReservations_PassesListToExporter(t *testing.T) {
	repo := &mockRepo{}
	exporter := &mockExporter{}
	list := []*domain.Reservation{{ID: "r-1"}, {ID: "r-2"}}
	var buf bytes.Buffer

	repo.On("List", mock.Anything, domain.ReservationFilter{}).Return(list, nil)
	exporter.On("WriteReservations", &buf, list).Return(nil)

	require.NoError(t, newTestService(repo, exporter, &mockMetrics{}).ExportReservations(context.Background(), &buf))
	exporter.AssertExpectations(t)
}

func TestHandlePaymentEvent_SucceededConfirmsPending(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByPaymentRef", mock.Anything, "demo_payment_1").
		Return(&domain.Reservation{ID: "r-1", Status: domain.StatusPending}, nil)
	repo.On("UpdateStatus", mock.Anything, "r-1", []domain.ReservationStatus{domain.StatusPending}, domain.StatusConfirmed).
		Return(nil)

	res, err := newTestService(repo, &mockExporter{}, &mockMetrics{}).
		HandlePaymentEvent(context.Background(), paymentEvent(models.EventPaymentSucceeded, "demo_payment_1"))

	require.NoError(t, err)
	assert.True(t, res.Received)
	assert.Equal(t, "r-1", *res.ReservationID)
	assert.Equal(t, "confirmed", *res.Status)
	repo.AssertExpectations(t)
}

func TestHandlePaymentEvent_SucceededTwiceIsIdempotent(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByPaymentRef", mock.Anything, "demo_payment_1").
		Return(&domain.Reservation{ID: "r-1", Status: domain.StatusConfirmed}, nil)

	res, err := newTestService(repo, &mockExporter{}, &mockMetrics{}).
		HandlePaymentEvent(context.Background(), paymentEvent(models.EventPaymentSucceeded, "demo_payment_1"))

	require.NoError(t, err)
	assert.Equal(t, "confirmed", *res.Status)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePaymentEvent_SucceededOnCancelledConflicts(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByPaymentRef", mock.Anything, "demo_payment_1").
		Return(&domain.Reservation{ID: "r-1", Status: domain.StatusCancelled}, nil)
	repo.On("UpdateStatus", mock.Anything, "r-1", mock.Anything, domain.StatusConfirmed).
		Return(reservationRepo.ErrStatusTransition)

	_, err := newTestService(repo, &mockExporter{}, &mockMetrics{}).
		HandlePaymentEvent(context.Background(), paymentEvent(models.EventPaymentSucceeded, "demo_payment_1"))

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestHandlePaymentEvent_FailedCancelsActive(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByPaymentRef", mock.Anything, "demo_payment_2").
		Return(&domain.Reservation{ID: "r-2", Status: domain.StatusPending}, nil)
	repo.On("UpdateStatus", mock.Anything, "r-2", domain.ActiveStatuses, domain.StatusCancelled).
		Return(nil)

	res, err := newTestService(repo, &mockExporter{}, &mockMetrics{}).
		HandlePaymentEvent(context.Background(), paymentEvent(models.EventPaymentFailed, "demo_payment_2"))

	require.NoError(t, err)
	assert.Equal(t, "cancelled", *res.Status)
}

func TestHandlePaymentEvent_UnknownRef(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByPaymentRef", mock.Anything, "nope").Return(nil, reservationRepo.ErrReservationNotFound)

	_, err := newTestService(repo, &mockExporter{}, &mockMetrics{}).
		HandlePaymentEvent(context.Background(), paymentEvent(models.EventPaymentFailed, "nope"))

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestHandlePaymentEvent_IgnoresOtherTypes(t *testing.T) {
	repo := &mockRepo{}

	res, err := newTestService(repo, &mockExporter{}, &mockMetrics{}).
		HandlePaymentEvent(context.Background(), paymentEvent("charge.refunded", "demo_payment_1"))

	require.NoError(t, err)
	assert.True(t, res.Received)
	assert.Nil(t, res.ReservationID)
	repo.AssertNotCalled(t, "GetByPaymentRef", mock.Anything, mock.Anything)
}

func TestHandlePaymentEvent_MissingRef(t *testing.T) {
	_, err := newTestService(&mockRepo{}, &mockExporter{}, &mockMetrics{}).
		HandlePaymentEvent(context.Background(), paymentEvent(models.EventPaymentSucceeded, "  "))

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExpireStaleHolds(t *testing.T) {
	repo := &mockRepo{}
	metrics := &mockMetrics{}
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	repo.On("CancelPendingCreatedBefore", mock.Anything, now.Add(-15*time.Minute)).Return(int64(3), nil)
	metrics.On("RecordHoldsExpired", int64(3)).Return()

	svc := newTestService(repo, &mockExporter{}, metrics)
	svc.now = func() time.Time { return now }

	n, err := svc.ExpireStaleHolds(context.Background(), 15*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	metrics.AssertExpectations(t)
}

func TestExpireStaleHolds_NothingExpired(t *testing.T) {
	repo := &mockRepo{}
	metrics := &mockMetrics{}
	repo.On("CancelPendingCreatedBefore", mock.Anything, mock.Anything).Return(int64(0), nil)

	n, err := newTestService(repo, &mockExporter{}, metrics).ExpireStaleHolds(context.Background(), time.Minute)

	require.NoError(t, err)
	assert.Zero(t, n)
	metrics.AssertNotCalled(t, "RecordHoldsExpired", mock.Anything)
}
