package models

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// Request модели

// AddInstructorRequest запрос на добавление преподавателя в реестр
type AddInstructorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Response модели

// InstructorResponse ответ с данными преподавателя
type InstructorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// InstructorListResponse список преподавателей
type InstructorListResponse struct {
	Instructors []InstructorResponse `json:"instructors"`
}

// VerifyInstructorResponse результат проверки email по реестру
type VerifyInstructorResponse struct {
	IsInstructor bool   `json:"isInstructor"`
	Name         string `json:"name,omitempty"`
}

// FromDomainInstructor конвертирует domain модель в response
func FromDomainInstructor(i *domain.Instructor) *InstructorResponse {
	return &InstructorResponse{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainInstructorList конвертирует список domain моделей в response
func FromDomainInstructorList(instructors []*domain.Instructor) *InstructorListResponse {
	resp := &InstructorListResponse{
		Instructors: make([]InstructorResponse, 0, len(instructors)),
	}

	for _, i := range instructors {
		resp.Instructors = append(resp.Instructors, *FromDomainInstructor(i))
	}

	return resp
}
