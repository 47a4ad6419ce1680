package blockeddates

import "errors"

var (
	// ErrBlockedDateNotFound возвращается, когда дата не заблокирована
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrDateAlreadyBlocked возвращается при повторной блокировке даты
	ErrDateAlreadyBlocked = errors.New("date already blocked")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
