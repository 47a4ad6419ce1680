package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LabBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// DBExecutor интерфейс для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с уведомлениями админ-панели
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет уведомление. Если в контексте есть активная транзакция,
// запись становится частью атомарной операции записи/отмены.
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns(
			"kind",
			"first_name",
			"last_name",
			"email",
			"enroll_date",
			"start_time",
			"is_instructor",
		).
		Values(
			string(n.Kind),
			n.FirstName,
			n.LastName,
			n.Email,
			n.Date,
			n.StartTime.String(),
			n.IsInstructor,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time

	return n, nil
}

// ListRecent возвращает последние уведомления (по убыванию времени создания)
func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"kind",
		"first_name",
		"last_name",
		"email",
		"enroll_date",
		"start_time",
		"is_instructor",
		"is_read",
		"created_at",
	).
		From("notifications").
		OrderBy("created_at DESC, id DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var (
			n         domain.Notification
			kind      string
			startTime string
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&n.ID,
			&kind,
			&n.FirstName,
			&n.LastName,
			&n.Email,
			&n.Date,
			&startTime,
			&n.IsInstructor,
			&n.IsRead,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan row: %v", ErrScanRow, err)
		}

		ts, err := types.NewTimeStringFromString(startTime)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRecent - parse start_time: %v", ErrScanRow, err)
		}

		n.Kind = domain.NotificationKind(kind)
		n.StartTime = ts
		n.CreatedAt = createdAt.Time

		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkRead помечает уведомление прочитанным. Повторный вызов безвреден.
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead помечает все непрочитанные уведомления прочитанными
func (r *Repository) MarkAllRead(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"is_read": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkAllRead - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkAllRead - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
