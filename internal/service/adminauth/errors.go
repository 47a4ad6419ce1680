package adminauth

import "errors"

var (
	// ErrAccessDenied возвращается при неверном коде доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
