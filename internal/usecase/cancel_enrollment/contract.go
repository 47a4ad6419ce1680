package cancel_enrollment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// EnrollmentRepository интерфейс репозитория записей
type EnrollmentRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Enrollment, error)
	DeleteByCode(ctx context.Context, code string) (int64, error)
	DeleteByEmailAndDate(ctx context.Context, email string, date time.Time) (int64, error)
}

// RosterService интерфейс реестра преподавателей
type RosterService interface {
	FindByEmail(ctx context.Context, email string) (*domain.Instructor, error)
}

// NotificationRecorder интерфейс для записи уведомлений админ-панели
type NotificationRecorder interface {
	Record(ctx context.Context, n *domain.Notification) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
