package create_reservation

import (
	"errors"
)

var (
	// ErrCourtUnavailable возвращается, когда корт не существует или на обслуживании
	ErrCourtUnavailable = errors.New("create_reservation: court not available for reservation")

	// ErrDurationTooShort возвращается, когда бронирование короче минимальной длительности
	ErrDurationTooShort = errors.New("create_reservation: reservation is shorter than the minimum duration")

	// ErrTooManyAttendees возвращается, когда участников больше допустимого
	ErrTooManyAttendees = errors.New("create_reservation: too many attendees")

	// ErrAdvanceWindowExceeded возвращается, когда дата бронирования дальше разрешенного окна
	ErrAdvanceWindowExceeded = errors.New("create_reservation: reservation is too far in advance")

	// ErrTimeConflict возвращается, когда корт уже занят на это время
	ErrTimeConflict = errors.New("create_reservation: court already reserved for this time")

	// ErrPaymentFailed возвращается, когда платежный шлюз отклонил намерение
	ErrPaymentFailed = errors.New("create_reservation: payment declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// rejectionReason метка причины отказа для метрик
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrCourtUnavailable):
		return "court_unavailable"
	case errors.Is(err, ErrDurationTooShort):
		return "duration_too_short"
	case errors.Is(err, ErrTooManyAttendees):
		return "too_many_attendees"
	case errors.Is(err, ErrAdvanceWindowExceeded):
		return "advance_window_exceeded"
	case errors.Is(err, ErrTimeConflict):
		return "time_conflict"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrPaymentFailed):
		return "payment_declined"
	default:
		return "internal"
	}
}
