package delete_instructor_day

import (
	"context"
	"time"
)

type EnrollmentsService interface {
	DeleteInstructorDay(ctx context.Context, email string, date time.Time) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
