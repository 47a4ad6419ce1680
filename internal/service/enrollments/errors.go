package enrollments

import "errors"

var (
	// ErrEnrollmentNotFound возвращается, когда запись не найдена
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
