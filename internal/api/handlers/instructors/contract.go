package instructors

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/service/roster/models"
)

type RosterService interface {
	List(ctx context.Context) (*models.InstructorListResponse, error)
	Add(ctx context.Context, req *models.AddInstructorRequest) (*models.InstructorResponse, error)
	Remove(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
