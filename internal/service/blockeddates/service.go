package blockeddates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	blockedRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/blockeddate"
	"github.com/m04kA/SMC-LabBookingService/internal/service/blockeddates/models"
)

// Service сервис заблокированных дат
type Service struct {
	blockedRepo BlockedDateRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заблокированных дат
func NewService(blockedRepo BlockedDateRepository, logger Logger) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		logger:      logger,
	}
}

// List возвращает все заблокированные даты
func (s *Service) List(ctx context.Context) (*models.BlockedDateListResponse, error) {
	blocked, err := s.blockedRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDateList(blocked), nil
}

// Block блокирует дату для публичной записи.
// Существующие записи на эту дату сохраняются.
func (s *Service) Block(ctx context.Context, date time.Time, reason string) (*models.BlockedDateResponse, error) {
	s.logger.Info("Block: blocking date=%s", date.Format(domain.DateFormat))

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = domain.DefaultBlockReason
	}

	created, err := s.blockedRepo.Create(ctx, &domain.BlockedDate{
		Date:   date,
		Reason: reason,
	})
	if err != nil {
		if errors.Is(err, blockedRepo.ErrDateAlreadyBlocked) {
			s.logger.Warn("Block: date=%s already blocked", date.Format(domain.DateFormat))
			return nil, ErrDateAlreadyBlocked
		}
		s.logger.Error("Block: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDate(created), nil
}

// Unblock снимает блокировку с даты
func (s *Service) Unblock(ctx context.Context, date time.Time) error {
	s.logger.Info("Unblock: unblocking date=%s", date.Format(domain.DateFormat))

	err := s.blockedRepo.DeleteByDate(ctx, date)
	if err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("Unblock: date=%s is not blocked", date.Format(domain.DateFormat))
			return ErrBlockedDateNotFound
		}
		s.logger.Error("Unblock: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	return nil
}
