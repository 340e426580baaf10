package reservations

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	GetByPaymentRef(ctx context.Context, paymentRef string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus) error
	CancelPendingCreatedBefore(ctx context.Context, deadline time.Time) (int64, error)
}

// Exporter интерфейс выгрузки бронирований в файл
type Exporter interface {
	WriteReservations(w io.Writer, reservations []*domain.Reservation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик сервиса
type Metrics interface {
	RecordHoldsExpired(n int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
