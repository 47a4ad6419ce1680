package instructor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LabBookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// DBExecutor интерфейс для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с реестром преподавателей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория преподавателей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail ищет преподавателя по email без учета регистра.
// Вызывается на каждую запись и отмену — именно этот lookup решает,
// бронируется один слот или весь день.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectInstructors().
		Where(squirrel.Expr("LOWER(email) = LOWER(?)", email)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var (
		ins       domain.Instructor
		createdAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ins.ID,
		&ins.Name,
		&ins.Email,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan instructor: %v", ErrScanRow, err)
	}

	ins.CreatedAt = createdAt.Time

	return &ins, nil
}

// List возвращает всех преподавателей, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectInstructors().
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	instructors := make([]*domain.Instructor, 0)
	for rows.Next() {
		var (
			ins       domain.Instructor
			createdAt sql.NullTime
		)

		if err := rows.Scan(&ins.ID, &ins.Name, &ins.Email, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		ins.CreatedAt = createdAt.Time
		instructors = append(instructors, &ins)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return instructors, nil
}

// Create добавляет преподавателя в реестр
func (r *Repository) Create(ctx context.Context, ins *domain.Instructor) (*domain.Instructor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("instructors").
		Columns("name", "email").
		Values(ins.Name, ins.Email).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ins.ID, &createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	ins.CreatedAt = createdAt.Time

	return ins, nil
}

// DeleteByID удаляет преподавателя из реестра
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("instructors").
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
		return ErrInstructorNotFound
	}

	return nil
}

func selectInstructors() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"email",
		"created_at",
	).From("instructors")
}
