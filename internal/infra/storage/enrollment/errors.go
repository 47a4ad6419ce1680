package enrollment

import "errors"

var (
	// ErrEnrollmentNotFound возвращается, когда запись не найдена
	ErrEnrollmentNotFound = errors.New("enrollment.repository: enrollment not found")

	// ErrCodeAlreadyExists возвращается при коллизии кода записи
	// (уникальный индекс по колонке code). Вызывающий код должен
	// сгенерировать новый код и повторить транзакцию.
	ErrCodeAlreadyExists = errors.New("enrollment.repository: enrollment code already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("enrollment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("enrollment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("enrollment.repository: failed to scan row")
)
