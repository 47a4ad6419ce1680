package create_enrollment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/integrations/mailer"
)

// EnrollmentRepository интерфейс репозитория записей
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Enrollment, error)
}

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.BlockedDate, error)
}

// RosterService интерфейс реестра преподавателей
type RosterService interface {
	FindByEmail(ctx context.Context, email string) (*domain.Instructor, error)
}

// NotificationRecorder интерфейс для записи уведомлений админ-панели
type NotificationRecorder interface {
	Record(ctx context.Context, n *domain.Notification) error
}

// MailClient интерфейс почтового клиента
type MailClient interface {
	SendEnrollmentConfirmation(ctx context.Context, conf mailer.Confirmation) error
}

// CodeGenerator интерфейс генератора кодов отмены
type CodeGenerator interface {
	Generate() string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
