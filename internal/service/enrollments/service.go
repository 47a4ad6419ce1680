package enrollments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	enrollmentRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/enrollment"
	"github.com/m04kA/SMC-LabBookingService/internal/service/enrollments/models"
)

// Service сервис административных операций над записями
type Service struct {
	enrollmentRepo EnrollmentRepository
	notifications  NotificationRecorder
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	enrollmentRepo EnrollmentRepository,
	notifications NotificationRecorder,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		enrollmentRepo: enrollmentRepo,
		notifications:  notifications,
		txManager:      txManager,
		logger:         logger,
	}
}

// GetByDate возвращает расписание дня для админ-панели
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.DayScheduleResponse, error) {
	enrollments, err := s.enrollmentRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEnrollmentList(date, enrollments), nil
}

// DeleteByID удаляет одну запись по идентификатору.
// Уведомление об отмене пишется в той же транзакции, что и удаление.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	s.logger.Info("DeleteByID: deleting enrollment id=%d", id)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.enrollmentRepo.DeleteByID(ctx, id); err != nil {
			return err
		}

		return s.notifications.Record(ctx, &domain.Notification{
			Kind:      domain.KindCancellation,
			FirstName: enrollment.FirstName,
			LastName:  enrollment.LastName,
			Email:     enrollment.Email,
			Date:      enrollment.Date,
			StartTime: enrollment.StartTime,
		})
	})

	if err != nil {
		if errors.Is(err, enrollmentRepo.ErrEnrollmentNotFound) {
			s.logger.Warn("DeleteByID: enrollment id=%d not found", id)
			return ErrEnrollmentNotFound
		}
		s.logger.Error("DeleteByID: transaction error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteByID - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteByID: enrollment id=%d deleted", id)
	return nil
}

// DeleteInstructorDay освобождает день, занятый преподавателем: удаляет все
// записи с его email на дату одной транзакцией.
func (s *Service) DeleteInstructorDay(ctx context.Context, email string, date time.Time) (int64, error) {
	s.logger.Info("DeleteInstructorDay: releasing date=%s for email=%s", date.Format(domain.DateFormat), email)

	var deleted int64

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		enrollments, err := s.enrollmentRepo.GetByDate(ctx, date)
		if err != nil {
			return err
		}

		var sample *domain.Enrollment
		for _, e := range enrollments {
			if e.BelongsTo(email) {
				sample = e
				break
			}
		}
		if sample == nil {
			return enrollmentRepo.ErrEnrollmentNotFound
		}

		deleted, err = s.enrollmentRepo.DeleteByEmailAndDate(ctx, email, date)
		if err != nil {
			return err
		}

		return s.notifications.Record(ctx, &domain.Notification{
			Kind:         domain.KindCancellation,
			FirstName:    sample.FirstName,
			LastName:     sample.LastName,
			Email:        sample.Email,
			Date:         sample.Date,
			StartTime:    sample.StartTime,
			IsInstructor: true,
		})
	})

	if err != nil {
		if errors.Is(err, enrollmentRepo.ErrEnrollmentNotFound) {
			s.logger.Warn("DeleteInstructorDay: no enrollments for email=%s on date=%s", email, date.Format(domain.DateFormat))
			return 0, ErrEnrollmentNotFound
		}
		s.logger.Error("DeleteInstructorDay: transaction error for email=%s date=%s: %v", email, date.Format(domain.DateFormat), err)
		return 0, fmt.Errorf("%w: DeleteInstructorDay - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteInstructorDay: released %d slots on date=%s", deleted, date.Format(domain.DateFormat))
	return deleted, nil
}
