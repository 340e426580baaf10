package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrTimeConflict возвращается, когда ограничение исключения отклонило пересекающееся бронирование
	ErrTimeConflict = errors.New("reservation.repository: court already reserved for this time")

	// ErrDuplicate возвращается при нарушении уникальности (ID или платежная ссылка)
	ErrDuplicate = errors.New("reservation.repository: duplicate reservation")

	// ErrStatusTransition возвращается, когда бронирование не в том статусе, из которого разрешен переход
	ErrStatusTransition = errors.New("reservation.repository: status transition not allowed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
