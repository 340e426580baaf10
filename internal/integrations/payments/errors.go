package payments

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrDeclined возвращается, когда шлюз отказался создавать платеж
	ErrDeclined = errors.New("payments client: intent declined")
)
