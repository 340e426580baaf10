package analytics

import "context"

// ReservationStats источник агрегатов по бронированиям
type ReservationStats interface {
	Stats(ctx context.Context) (total int64, confirmed int64, revenue float64, err error)
}

// UserCounter источник количества участников
type UserCounter interface {
	CountNonStaff(ctx context.Context) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
