package enrollments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// EnrollmentRepository интерфейс репозитория записей
type EnrollmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Enrollment, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Enrollment, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByEmailAndDate(ctx context.Context, email string, date time.Time) (int64, error)
}

// NotificationRecorder интерфейс для записи уведомлений админ-панели
type NotificationRecorder interface {
	Record(ctx context.Context, n *domain.Notification) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
