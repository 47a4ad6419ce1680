package roster

import "errors"

var (
	// ErrInstructorNotFound возвращается, когда преподаватель не найден
	ErrInstructorNotFound = errors.New("instructor not found")

	// ErrEmailAlreadyExists возвращается, когда email уже есть в реестре
	ErrEmailAlreadyExists = errors.New("instructor email already registered")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
