package delete_enrollment

import "context"

type EnrollmentsService interface {
	DeleteByID(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
