package blockeddate

import "errors"

var (
	// ErrBlockedDateNotFound возвращается, когда дата не заблокирована
	ErrBlockedDateNotFound = errors.New("blockeddate.repository: blocked date not found")

	// ErrDateAlreadyBlocked возвращается при повторной блокировке даты
	ErrDateAlreadyBlocked = errors.New("blockeddate.repository: date already blocked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blockeddate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blockeddate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blockeddate.repository: failed to scan row")
)
