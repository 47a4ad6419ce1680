package cancel_enrollment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	enrollmentRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/enrollment"
	"github.com/m04kA/SMC-LabBookingService/internal/service/roster"
	"github.com/m04kA/SMC-LabBookingService/pkg/enrollcode"
)

// UseCase use case отмены записи по коду
type UseCase struct {
	enrollmentRepo EnrollmentRepository
	rosterService  RosterService
	notifications  NotificationRecorder
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	enrollmentRepo EnrollmentRepository,
	rosterService RosterService,
	notifications NotificationRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		enrollmentRepo: enrollmentRepo,
		rosterService:  rosterService,
		notifications:  notifications,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case отмены записи.
// Код преподавателя освобождает весь день: удаляются все записи с его email
// на эту дату, какой бы из восьми кодов ни был предъявлен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	uc.logger.Info("CancelEnrollment: code=%s", code)

	if !enrollcode.IsValid(code) {
		uc.logger.Warn("CancelEnrollment: malformed code=%q", req.Code)
		return nil, fmt.Errorf("%w: malformed cancellation code", ErrInvalidInput)
	}

	var (
		deleted      int64
		isInstructor bool
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		enrollment, err := uc.enrollmentRepo.GetByCode(txCtx, code)
		if err != nil {
			if errors.Is(err, enrollmentRepo.ErrEnrollmentNotFound) {
				return ErrCodeNotFound
			}
			return fmt.Errorf("%w: failed to get enrollment: %v", ErrInternal, err)
		}

		_, err = uc.rosterService.FindByEmail(txCtx, enrollment.Email)
		if err != nil && !errors.Is(err, roster.ErrInstructorNotFound) {
			return fmt.Errorf("%w: roster lookup failed: %v", ErrInternal, err)
		}
		isInstructor = err == nil

		if isInstructor {
			deleted, err = uc.enrollmentRepo.DeleteByEmailAndDate(txCtx, enrollment.Email, enrollment.Date)
		} else {
			deleted, err = uc.enrollmentRepo.DeleteByCode(txCtx, code)
		}
		if err != nil {
			return fmt.Errorf("%w: failed to delete enrollment: %v", ErrInternal, err)
		}
		if deleted == 0 {
			return ErrCodeNotFound
		}

		return uc.notifications.Record(txCtx, &domain.Notification{
			Kind:         domain.KindCancellation,
			FirstName:    enrollment.FirstName,
			LastName:     enrollment.LastName,
			Email:        enrollment.Email,
			Date:         enrollment.Date,
			StartTime:    enrollment.StartTime,
			IsInstructor: isInstructor,
		})
	})

	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			uc.logger.Warn("CancelEnrollment: code=%s not found", code)
			return nil, ErrCodeNotFound
		}
		uc.logger.Error("CancelEnrollment: transaction error for code=%s: %v", code, err)
		return nil, err
	}

	uc.logger.Info("CancelEnrollment: deleted %d enrollment(s) for code=%s", deleted, code)

	return &Response{
		DeletedCount: deleted,
		Instructor:   isInstructor,
	}, nil
}
