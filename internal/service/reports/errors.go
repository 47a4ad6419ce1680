package reports

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")

	// ErrRenderPDF возвращается при ошибке генерации PDF документа
	ErrRenderPDF = errors.New("service: failed to render pdf")
)
