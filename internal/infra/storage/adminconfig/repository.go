package adminconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LabBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LabBookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для хранения кода доступа к админ-панели.
// Таблица admin_config содержит единственную строку; код перезаписывается
// из конфигурации при каждом старте сервиса (hot reload не поддерживается).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации админа
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertAccessCode записывает код доступа, заменяя существующий.
// Вызывается один раз при старте сервиса.
func (r *Repository) UpsertAccessCode(ctx context.Context, code string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("admin_config").
		Columns("id", "access_code").
		Values(1, code).
		Suffix("ON CONFLICT (id) DO UPDATE SET access_code = EXCLUDED.access_code").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertAccessCode - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertAccessCode - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetAccessCode возвращает текущий код доступа
func (r *Repository) GetAccessCode(ctx context.Context) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("access_code").
		From("admin_config").
		Where(squirrel.Eq{"id": 1}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: GetAccessCode - build select query: %v", ErrBuildQuery, err)
	}

	var code string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&code)
	if err == sql.ErrNoRows {
		return "", ErrAccessCodeNotSet
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetAccessCode - scan code: %v", ErrExecQuery, err)
	}

	return code, nil
}
