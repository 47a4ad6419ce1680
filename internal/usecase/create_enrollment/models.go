package create_enrollment

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// Request запрос на создание записи
type Request struct {
	FirstName    string
	LastName     string
	Email        string
	AcademicYear string
	Date         time.Time
	StartTime    types.TimeString

	// BypassBlockedDates выставляется только админским обработчиком:
	// администратор может записывать на заблокированные даты
	BypassBlockedDates bool
}

// Response ответ на создание записи
type Response struct {
	Code       string   `json:"code"`
	Codes      []string `json:"codes,omitempty"`
	Instructor bool     `json:"instructor"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Email      string   `json:"email"`
	Date       string   `json:"date"`
	StartTime  string   `json:"startTime"`
	EmailSent  bool     `json:"emailSent"`
}
