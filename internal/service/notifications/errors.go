package notifications

import "errors"

var (
	// ErrEmptyMessage возвращается, когда текст уведомления пуст
	ErrEmptyMessage = errors.New("message is required")

	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
