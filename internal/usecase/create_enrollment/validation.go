package create_enrollment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if len(req.FirstName) > domain.MaxNameLength {
		return fmt.Errorf("%w: firstName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if len(req.LastName) > domain.MaxNameLength {
		return fmt.Errorf("%w: lastName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.AcademicYear) == "" {
		return fmt.Errorf("%w: academicYear is required", ErrInvalidInput)
	}
	if len(req.AcademicYear) > domain.MaxAcademicYearLength {
		return fmt.Errorf("%w: academicYear is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Обе границы окна включительны: 18:40 и 22:00 допустимы
	if !domain.TimeWithinWindow(req.StartTime) {
		return ErrOutsideTimeWindow
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}

// hasDuplicate проверяет, записан ли email на эту дату
func hasDuplicate(enrollments []*domain.Enrollment, email string) bool {
	for _, e := range enrollments {
		if e.BelongsTo(email) {
			return true
		}
	}
	return false
}
