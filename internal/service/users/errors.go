package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrStaffAccount возвращается при попытке изменить учетную запись персонала
	ErrStaffAccount = errors.New("cannot modify staff accounts")

	// ErrNoFields возвращается, когда запрос не содержит изменяемых полей
	ErrNoFields = errors.New("no valid fields to update")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
