package cancel_enrollment

import (
	"context"

	cancelEnrollment "github.com/m04kA/SMC-LabBookingService/internal/usecase/cancel_enrollment"
)

type CancelEnrollmentUseCase interface {
	Execute(ctx context.Context, req *cancelEnrollment.Request) (*cancelEnrollment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
