package adminauth

import (
	"context"
	"crypto/subtle"
	"fmt"
)

// ConfigRepository интерфейс репозитория конфигурации админа
type ConfigRepository interface {
	UpsertAccessCode(ctx context.Context, code string) error
	GetAccessCode(ctx context.Context) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис авторизации админ-панели
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Seed записывает код доступа из конфигурации при старте сервиса
func (s *Service) Seed(ctx context.Context, code string) error {
	if err := s.configRepo.UpsertAccessCode(ctx, code); err != nil {
		return fmt.Errorf("%w: Seed - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Seed: admin access code initialized")
	return nil
}

// Verify проверяет код доступа. Сравнение устойчиво к тайминг-атакам.
func (s *Service) Verify(ctx context.Context, code string) error {
	stored, err := s.configRepo.GetAccessCode(ctx)
	if err != nil {
		s.logger.Error("Verify: repository error: %v", err)
		return fmt.Errorf("%w: Verify - repository error: %v", ErrInternal, err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		s.logger.Warn("Verify: invalid access code attempt")
		return ErrAccessDenied
	}

	return nil
}
