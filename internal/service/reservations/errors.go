package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование с платежной ссылкой не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidTransition возвращается, когда событие платежа не применимо к статусу бронирования
	ErrInvalidTransition = errors.New("reservation status does not allow this payment event")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
