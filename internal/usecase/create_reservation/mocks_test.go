package create_reservation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/internal/integrations/payments"
)

type mockCourtRepo struct{ mock.Mock }

func (m *mockCourtRepo) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Court), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) FindOverlapping(ctx context.Context, courtID int64, start, end time.Time) ([]*domain.Reservation, error) {
	args := m.Called(ctx, courtID, start, end)
	if r := args.Get(0); r != nil {
		return r.([]*domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationRepo) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, r)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Reservation) *domain.Reservation); ok {
		return fn(ctx, r), args.Error(1)
	}
	if res := args.Get(0); res != nil {
		return res.(*domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPaymentClient struct{ mock.Mock }

func (m *mockPaymentClient) CreateIntent(ctx context.Context, reservationID string, amount float64) (*payments.Intent, error) {
	args := m.Called(ctx, reservationID, amount)
	if fn, ok := args.Get(0).(func(context.Context, string, float64) *payments.Intent); ok {
		return fn(ctx, reservationID, amount), args.Error(1)
	}
	if i := args.Get(0); i != nil {
		return i.(*payments.Intent), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) RecordReservationCreated(pricing string) { m.Called(pricing) }
func (m *mockMetrics) RecordReservationRejected(reason string) { m.Called(reason) }

// passthroughTx выполняет callback без реальной транзакции
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// recordingLogger сохраняет отформатированные сообщения уровней Warn и Error
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Info(string, ...interface{}) {}

func (l *recordingLogger) Warn(format string, v ...interface{}) { l.record(format, v...) }

func (l *recordingLogger) Error(format string, v ...interface{}) { l.record(format, v...) }

func (l *recordingLogger) record(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
