package cancel_enrollment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном формате кода
	ErrInvalidInput = errors.New("cancel_enrollment: invalid input data")

	// ErrCodeNotFound возвращается, когда код отмены не найден
	ErrCodeNotFound = errors.New("cancel_enrollment: code not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_enrollment: internal error")
)
