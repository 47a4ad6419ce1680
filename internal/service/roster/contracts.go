package roster

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// InstructorRepository интерфейс репозитория реестра преподавателей
type InstructorRepository interface {
	Create(ctx context.Context, instructor *domain.Instructor) (*domain.Instructor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Instructor, error)
	List(ctx context.Context) ([]*domain.Instructor, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
