package adminconfig

import "errors"

var (
	// ErrAccessCodeNotSet возвращается, когда код доступа еще не инициализирован
	ErrAccessCodeNotSet = errors.New("adminconfig.repository: access code not set")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("adminconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("adminconfig.repository: failed to execute query")
)
