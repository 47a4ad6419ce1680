package create_enrollment

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	createEnrollment "github.com/m04kA/SMC-LabBookingService/internal/usecase/create_enrollment"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// CreateEnrollmentRequest HTTP request model
type CreateEnrollmentRequest struct {
	FirstName    string `json:"firstName" validate:"required,max=100"`
	LastName     string `json:"lastName" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=255"`
	AcademicYear string `json:"academicYear" validate:"required,max=50"`
	Date         string `json:"date" validate:"required"`      // "2026-09-10"
	StartTime    string `json:"startTime" validate:"required"` // "19:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateEnrollmentRequest) ToUseCaseRequest(bypassBlockedDates bool) (*createEnrollment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createEnrollment.Request{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Email:              r.Email,
		AcademicYear:       r.AcademicYear,
		Date:               date,
		StartTime:          startTime,
		BypassBlockedDates: bypassBlockedDates,
	}, nil
}
