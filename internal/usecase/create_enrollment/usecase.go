package create_enrollment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	blockedRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/blockeddate"
	enrollmentRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/enrollment"
	"github.com/m04kA/SMC-LabBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-LabBookingService/internal/service/roster"
)

// maxCodeAttempts ограничивает число повторов при коллизии кодов отмены
const maxCodeAttempts = 5

// UseCase use case создания записи в лабораторию
type UseCase struct {
	enrollmentRepo EnrollmentRepository
	blockedRepo    BlockedDateRepository
	rosterService  RosterService
	notifications  NotificationRecorder
	mailClient     MailClient
	codes          CodeGenerator
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	enrollmentRepo EnrollmentRepository,
	blockedRepo BlockedDateRepository,
	rosterService RosterService,
	notifications NotificationRecorder,
	mailClient MailClient,
	codes CodeGenerator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		enrollmentRepo: enrollmentRepo,
		blockedRepo:    blockedRepo,
		rosterService:  rosterService,
		notifications:  notifications,
		mailClient:     mailClient,
		codes:          codes,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания записи.
// Проверки занятости и вставки выполняются в сериализуемой транзакции;
// преподаватель из реестра занимает все слоты дня целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateEnrollment: email=%s, date=%s, time=%s",
		req.Email, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateEnrollment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateEnrollment: date validation failed for %s", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Транзакция с повтором при коллизии кодов отмены.
	// Коллизия обнаруживается уникальным индексом уже внутри транзакции,
	// поэтому повторяется вся транзакция с новыми кодами.
	// Реестр преподавателей читается внутри транзакции: роль email
	// определяется тем же снимком, что занятость и блокировка дня.
	var (
		created    []*domain.Enrollment
		instructor *domain.Instructor
		err        error
	)

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		created = nil
		instructor = nil

		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			found, lookupErr := uc.rosterService.FindByEmail(txCtx, req.Email)
			if lookupErr != nil && !errors.Is(lookupErr, roster.ErrInstructorNotFound) {
				uc.logger.Error("CreateEnrollment: roster lookup failed for email=%s: %v", req.Email, lookupErr)
				return fmt.Errorf("%w: roster lookup failed: %v", ErrInternal, lookupErr)
			}
			if lookupErr == nil {
				instructor = found
			}

			return uc.allocate(txCtx, req, instructor, &created)
		})

		if errors.Is(err, enrollmentRepo.ErrCodeAlreadyExists) {
			uc.logger.Warn("CreateEnrollment: code collision, attempt %d/%d", attempt, maxCodeAttempts)
			continue
		}
		break
	}

	if err != nil {
		if errors.Is(err, enrollmentRepo.ErrCodeAlreadyExists) {
			uc.logger.Error("CreateEnrollment: exhausted code generation attempts for email=%s", req.Email)
			return nil, ErrCodeGeneration
		}
		return nil, err
	}

	primary := created[0]
	codes := make([]string, 0, len(created))
	for _, e := range created {
		codes = append(codes, e.Code)
	}

	uc.logger.Info("CreateEnrollment: created %d enrollment(s) for email=%s on %s",
		len(created), primary.Email, primary.Date.Format(domain.DateFormat))

	// 4. Письмо-подтверждение после фиксации транзакции, ошибки не фатальны
	emailSent := uc.sendConfirmation(ctx, primary, instructor != nil)

	return &Response{
		Code:       primary.Code,
		Codes:      codes,
		Instructor: instructor != nil,
		FirstName:  primary.FirstName,
		LastName:   primary.LastName,
		Email:      primary.Email,
		Date:       primary.Date.Format(domain.DateFormat),
		StartTime:  primary.StartTime.String(),
		EmailSent:  emailSent,
	}, nil
}

// allocate выполняет проверки занятости и вставки внутри транзакции
func (uc *UseCase) allocate(ctx context.Context, req *Request, instructor *domain.Instructor, created *[]*domain.Enrollment) error {
	// Блокировка даты администратором. Админская запись её обходит.
	if !req.BypassBlockedDates {
		_, err := uc.blockedRepo.GetByDate(ctx, req.Date)
		if err == nil {
			return ErrDateBlocked
		}
		if !errors.Is(err, blockedRepo.ErrBlockedDateNotFound) {
			return fmt.Errorf("%w: blocked date lookup failed: %v", ErrInternal, err)
		}
	}

	// Все записи дня с блокировкой строк (FOR UPDATE)
	enrollments, err := uc.enrollmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		return fmt.Errorf("%w: failed to get enrollments: %v", ErrInternal, err)
	}

	day := domain.AvailableDate{Date: req.Date, OccupiedCount: len(enrollments)}

	if instructor != nil {
		// Преподаватель занимает только полностью свободный день
		if !day.IsEmpty() {
			return ErrDateAlreadyHasEnrollments
		}

		for i := 0; i < domain.DailyCapacity; i++ {
			enrollment := &domain.Enrollment{
				FirstName:    instructor.Name,
				LastName:     req.LastName,
				Email:        req.Email,
				AcademicYear: req.AcademicYear,
				Date:         req.Date,
				StartTime:    req.StartTime,
				Code:         uc.codes.Generate(),
			}

			saved, err := uc.enrollmentRepo.Create(ctx, enrollment)
			if err != nil {
				return err
			}
			*created = append(*created, saved)
		}
	} else {
		if hasDuplicate(enrollments, req.Email) {
			return ErrDuplicateEnrollment
		}

		if day.IsFull() {
			return ErrNoSlotsAvailable
		}

		enrollment := &domain.Enrollment{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			AcademicYear: req.AcademicYear,
			Date:         req.Date,
			StartTime:    req.StartTime,
			Code:         uc.codes.Generate(),
		}

		saved, err := uc.enrollmentRepo.Create(ctx, enrollment)
		if err != nil {
			return err
		}
		*created = append(*created, saved)
	}

	primary := (*created)[0]

	return uc.notifications.Record(ctx, &domain.Notification{
		Kind:         domain.KindNew,
		FirstName:    primary.FirstName,
		LastName:     primary.LastName,
		Email:        primary.Email,
		Date:         primary.Date,
		StartTime:    primary.StartTime,
		IsInstructor: instructor != nil,
	})
}

// sendConfirmation отправляет письмо-подтверждение, не влияя на результат записи
func (uc *UseCase) sendConfirmation(ctx context.Context, e *domain.Enrollment, isInstructor bool) bool {
	err := uc.mailClient.SendEnrollmentConfirmation(ctx, mailer.Confirmation{
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Date:         e.Date.Format(domain.DateFormat),
		StartTime:    e.StartTime.String(),
		Code:         e.Code,
		IsInstructor: isInstructor,
	})

	if err != nil {
		if errors.Is(err, mailer.ErrDisabled) {
			return false
		}
		uc.logger.Warn("CreateEnrollment: confirmation email failed for %s: %v", e.Email, err)
		return false
	}

	return true
}
