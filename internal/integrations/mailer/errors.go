package mailer

import "errors"

var (
	// ErrInternal внутренняя ошибка клиента
	ErrInternal = errors.New("mailer.client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе почтового API
	ErrInvalidResponse = errors.New("mailer.client: invalid response")

	// ErrDisabled возвращается, когда отправка писем выключена в конфигурации
	ErrDisabled = errors.New("mailer.client: mail delivery disabled")
)
