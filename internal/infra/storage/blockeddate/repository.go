package blockeddate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LabBookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// DBExecutor интерфейс для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с заблокированными датами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заблокированных дат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate ищет блокировку указанной даты
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBlockedDates().
		Where(squirrel.Eq{"blocked_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var (
		bd        domain.BlockedDate
		createdAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bd.ID,
		&bd.Date,
		&bd.Reason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockedDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan blocked date: %v", ErrScanRow, err)
	}

	bd.CreatedAt = createdAt.Time

	return &bd, nil
}

// List возвращает все заблокированные даты по возрастанию
func (r *Repository) List(ctx context.Context) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBlockedDates().
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var (
			bd        domain.BlockedDate
			createdAt sql.NullTime
		)

		if err := rows.Scan(&bd.ID, &bd.Date, &bd.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		bd.CreatedAt = createdAt.Time
		dates = append(dates, &bd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// ListInRange возвращает заблокированные даты в диапазоне [from, to]
func (r *Repository) ListInRange(ctx context.Context, from, to time.Time) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBlockedDates().
		Where(squirrel.GtOrEq{"blocked_date": from}).
		Where(squirrel.LtOrEq{"blocked_date": to}).
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var (
			bd        domain.BlockedDate
			createdAt sql.NullTime
		)

		if err := rows.Scan(&bd.ID, &bd.Date, &bd.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListInRange - scan row: %v", ErrScanRow, err)
		}

		bd.CreatedAt = createdAt.Time
		dates = append(dates, &bd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInRange - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// Create блокирует дату
func (r *Repository) Create(ctx context.Context, bd *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("blocked_date", "reason").
		Values(bd.Date, bd.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&bd.ID, &createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDateAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	bd.CreatedAt = createdAt.Time

	return bd, nil
}

// DeleteByDate снимает блокировку даты
func (r *Repository) DeleteByDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"blocked_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}

func selectBlockedDates() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"blocked_date",
		"reason",
		"created_at",
	).From("blocked_dates")
}
