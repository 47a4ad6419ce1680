package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-LabBookingService/internal/service/notifications/models"
)

// recentLimit ограничивает ленту уведомлений в админ-панели
const recentLimit = 100

// Service сервис уведомлений админ-панели
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Record сохраняет уведомление о записи или отмене.
// Вызывается внутри транзакции соответствующей операции, поэтому уведомление
// появляется тогда и только тогда, когда операция зафиксирована.
func (s *Service) Record(ctx context.Context, n *domain.Notification) error {
	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Error("Record: repository error for kind=%s email=%s: %v", n.Kind, n.Email, err)
		return fmt.Errorf("%w: Record - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ListRecent возвращает последние уведомления для админ-панели
func (s *Service) ListRecent(ctx context.Context) (*models.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		s.logger.Error("ListRecent: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRecent - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(notifications), nil
}

// MarkRead помечает уведомление прочитанным
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	err := s.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found", id)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// MarkAllRead помечает все уведомления прочитанными
func (s *Service) MarkAllRead(ctx context.Context) error {
	if err := s.notificationRepo.MarkAllRead(ctx); err != nil {
		s.logger.Error("MarkAllRead: repository error: %v", err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	return nil
}
