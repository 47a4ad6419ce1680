package enrollment

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
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

const uniqueViolation = "23505"

// Repository репозиторий для работы с записями на лабораторию
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на лабораторию.
// Если в контексте передана активная транзакция, использует её.
// При нарушении уникального индекса по коду возвращает ErrCodeAlreadyExists —
// вызывающий usecase генерирует новый код и перезапускает транзакцию.
func (r *Repository) Create(ctx context.Context, enr *domain.Enrollment) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("enrollments").
		Columns(
			"first_name",
			"last_name",
			"email",
			"academic_year",
			"enroll_date",
			"start_time",
			"code",
		).
		Values(
			enr.FirstName,
			enr.LastName,
			enr.Email,
			enr.AcademicYear,
			enr.Date,
			enr.StartTime.String(),
			enr.Code,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&enr.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrCodeAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	enr.CreatedAt = createdAt.Time

	return enr, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectEnrollments().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, executor, "GetByID", query, args)
}

// GetByCode получает запись по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectEnrollments().
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, executor, "GetByCode", query, args)
}

// GetByDate получает все записи на указанную дату, отсортированные по времени.
// Внутри транзакции строки блокируются (FOR UPDATE): подсчет занятых мест
// и проверка дубликатов по email выполняются по заблокированному снимку,
// что закрывает гонку двух конкурентных записей на одну дату.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectEnrollments().
		Where(squirrel.Eq{"enroll_date": date}).
		OrderBy("start_time ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEnrollments(rows)
}

// CountsByDateRange возвращает количество занятых мест по датам в диапазоне
// [from, to] включительно. Даты без записей в результат не попадают.
func (r *Repository) CountsByDateRange(ctx context.Context, from, to time.Time) ([]*domain.AvailableDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("enroll_date", "COUNT(*)").
		From("enrollments").
		Where(squirrel.GtOrEq{"enroll_date": from}).
		Where(squirrel.LtOrEq{"enroll_date": to}).
		GroupBy("enroll_date").
		OrderBy("enroll_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountsByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountsByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]*domain.AvailableDate, 0)
	for rows.Next() {
		var item domain.AvailableDate
		if err := rows.Scan(&item.Date, &item.OccupiedCount); err != nil {
			return nil, fmt.Errorf("%w: CountsByDateRange - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountsByDateRange - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// DeleteByID удаляет одну запись по ID
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEnrollmentNotFound
	}

	return nil
}

// DeleteByCode удаляет одну запись по коду, возвращает количество удаленных строк
func (r *Repository) DeleteByCode(ctx context.Context, code string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("enrollments").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCode - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCode - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCode - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// DeleteByEmailAndDate удаляет все записи с указанным email на дату
// (email сравнивается без учета регистра). Используется для снятия
// полной брони преподавателя.
func (r *Repository) DeleteByEmailAndDate(ctx context.Context, email string, date time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("enrollments").
		Where(squirrel.Expr("LOWER(email) = LOWER(?)", email)).
		Where(squirrel.Eq{"enroll_date": date}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByEmailAndDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByEmailAndDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByEmailAndDate - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func selectEnrollments() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"first_name",
		"last_name",
		"email",
		"academic_year",
		"enroll_date",
		"start_time",
		"code",
		"created_at",
	).From("enrollments")
}

func (r *Repository) queryOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) (*domain.Enrollment, error) {
	var (
		enr       domain.Enrollment
		startTime string
		createdAt sql.NullTime
	)

	err := executor.QueryRowContext(ctx, query, args...).Scan(
		&enr.ID,
		&enr.FirstName,
		&enr.LastName,
		&enr.Email,
		&enr.AcademicYear,
		&enr.Date,
		&startTime,
		&enr.Code,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan enrollment: %v", ErrScanRow, op, err)
	}

	ts, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - parse start_time: %v", ErrScanRow, op, err)
	}

	enr.StartTime = ts
	enr.CreatedAt = createdAt.Time

	return &enr, nil
}

// scanEnrollments сканирует результаты запроса в слайс записей
func (r *Repository) scanEnrollments(rows *sql.Rows) ([]*domain.Enrollment, error) {
	enrollments := make([]*domain.Enrollment, 0)

	for rows.Next() {
		var (
			enr       domain.Enrollment
			startTime string
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&enr.ID,
			&enr.FirstName,
			&enr.LastName,
			&enr.Email,
			&enr.AcademicYear,
			&enr.Date,
			&startTime,
			&enr.Code,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanEnrollments - scan row: %v", ErrScanRow, err)
		}

		ts, err := types.NewTimeStringFromString(startTime)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEnrollments - parse start_time: %v", ErrScanRow, err)
		}

		enr.StartTime = ts
		enr.CreatedAt = createdAt.Time

		enrollments = append(enrollments, &enr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEnrollments - rows error: %v", ErrScanRow, err)
	}

	return enrollments, nil
}
