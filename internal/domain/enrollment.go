package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// Enrollment represents one reserved laboratory slot.
// An instructor claiming a whole day owns eight Enrollment rows sharing the
// same date, time and email but carrying distinct codes.
type Enrollment struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	AcademicYear string
	Date         time.Time
	StartTime    types.TimeString
	Code         string

	CreatedAt time.Time
}

// BelongsTo reports whether the enrollment belongs to the given email.
// Emails are compared case-insensitively everywhere in the system.
func (e *Enrollment) BelongsTo(email string) bool {
	return strings.EqualFold(e.Email, email)
}

// WithinWindow reports whether the start time falls inside the bookable
// evening window, bounds inclusive.
func (e *Enrollment) WithinWindow() bool {
	return TimeWithinWindow(e.StartTime)
}

// TimeWithinWindow checks a time of day against the enrollment window.
func TimeWithinWindow(t types.TimeString) bool {
	minutes, err := t.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	return minutes >= WindowOpensMinutes && minutes <= WindowClosesMinutes
}
