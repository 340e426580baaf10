package login

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном имени или пароле
	ErrInvalidCredentials = errors.New("login: invalid credentials")

	// ErrTooManyAttempts возвращается при превышении лимита попыток
	ErrTooManyAttempts = errors.New("login: too many attempts")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("login: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("login: internal error")
)
