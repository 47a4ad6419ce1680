package blockeddates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	Create(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
	List(ctx context.Context) ([]*domain.BlockedDate, error)
	DeleteByDate(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
