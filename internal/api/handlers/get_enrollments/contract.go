package get_enrollments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/service/enrollments/models"
)

type EnrollmentsService interface {
	GetByDate(ctx context.Context, date time.Time) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
