package verify_instructor

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/service/roster/models"
)

type RosterService interface {
	Verify(ctx context.Context, email string) (*models.VerifyInstructorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
