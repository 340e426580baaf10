package export_reservations

import (
	"context"
	"io"
)

type ReservationService interface {
	ExportReservations(ctx context.Context, w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
