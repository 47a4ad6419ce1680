package models

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// EnrollmentResponse ответ с данными записи
type EnrollmentResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	AcademicYear string `json:"academicYear"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	Code         string `json:"code"`
	CreatedAt    string `json:"createdAt"`
}

// DayScheduleResponse расписание на день для админ-панели
type DayScheduleResponse struct {
	Date        string               `json:"date"`
	Used        int                  `json:"used"`
	Total       int                  `json:"total"`
	Enrollments []EnrollmentResponse `json:"enrollments"`
}

// FromDomainEnrollment конвертирует domain модель в response
func FromDomainEnrollment(e *domain.Enrollment) *EnrollmentResponse {
	return &EnrollmentResponse{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		AcademicYear: e.AcademicYear,
		Date:         e.Date.Format(domain.DateFormat),
		StartTime:    e.StartTime.String(),
		Code:         e.Code,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainEnrollmentList конвертирует список записей в расписание дня
func FromDomainEnrollmentList(date time.Time, enrollments []*domain.Enrollment) *DayScheduleResponse {
	resp := &DayScheduleResponse{
		Date:        date.Format(domain.DateFormat),
		Used:        len(enrollments),
		Total:       domain.DailyCapacity,
		Enrollments: make([]EnrollmentResponse, 0, len(enrollments)),
	}

	for _, e := range enrollments {
		resp.Enrollments = append(resp.Enrollments, *FromDomainEnrollment(e))
	}

	return resp
}
