package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	instructorRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/instructor"
	"github.com/m04kA/SMC-LabBookingService/internal/service/roster/models"
)

// Service сервис реестра преподавателей
type Service struct {
	instructorRepo InstructorRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса реестра
func NewService(instructorRepo InstructorRepository, logger Logger) *Service {
	return &Service{
		instructorRepo: instructorRepo,
		logger:         logger,
	}
}

// List возвращает всех преподавателей реестра
func (s *Service) List(ctx context.Context) (*models.InstructorListResponse, error) {
	instructors, err := s.instructorRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInstructorList(instructors), nil
}

// Add добавляет преподавателя в реестр
func (s *Service) Add(ctx context.Context, req *models.AddInstructorRequest) (*models.InstructorResponse, error) {
	s.logger.Info("Add: registering instructor email=%s", req.Email)

	instructor := &domain.Instructor{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}

	created, err := s.instructorRepo.Create(ctx, instructor)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrEmailAlreadyExists) {
			s.logger.Warn("Add: email=%s already registered", req.Email)
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("Add: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: instructor id=%d registered", created.ID)
	return models.FromDomainInstructor(created), nil
}

// Remove удаляет преподавателя из реестра.
// Существующие записи преподавателя в расписании не затрагиваются.
func (s *Service) Remove(ctx context.Context, id int64) error {
	s.logger.Info("Remove: removing instructor id=%d", id)

	err := s.instructorRepo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			s.logger.Warn("Remove: instructor id=%d not found", id)
			return ErrInstructorNotFound
		}
		s.logger.Error("Remove: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Verify проверяет email по реестру. Несовпадение регистра не влияет на результат.
func (s *Service) Verify(ctx context.Context, email string) (*models.VerifyInstructorResponse, error) {
	instructor, err := s.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrInstructorNotFound) {
			return &models.VerifyInstructorResponse{IsInstructor: false}, nil
		}
		return nil, err
	}

	return &models.VerifyInstructorResponse{
		IsInstructor: true,
		Name:         instructor.Name,
	}, nil
}

// FindByEmail возвращает преподавателя по email
func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.Instructor, error) {
	instructor, err := s.instructorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("FindByEmail: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: FindByEmail - repository error: %v", ErrInternal, err)
	}

	return instructor, nil
}
