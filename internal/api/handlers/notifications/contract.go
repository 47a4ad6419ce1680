package notifications

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/service/notifications/models"
)

type NotificationsService interface {
	ListRecent(ctx context.Context) (*models.NotificationListResponse, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
