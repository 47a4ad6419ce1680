package create_enrollment

import (
	"context"

	createEnrollment "github.com/m04kA/SMC-LabBookingService/internal/usecase/create_enrollment"
)

type CreateEnrollmentUseCase interface {
	Execute(ctx context.Context, req *createEnrollment.Request) (*createEnrollment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
