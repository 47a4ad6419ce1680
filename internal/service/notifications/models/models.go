package models

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID           int64  `json:"id"`
	Kind         string `json:"kind"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	IsInstructor bool   `json:"isInstructor"`
	IsRead       bool   `json:"isRead"`
	CreatedAt    string `json:"createdAt"`
}

// NotificationListResponse список уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// FromDomainNotification конвертирует domain модель в response
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:           n.ID,
		Kind:         string(n.Kind),
		FirstName:    n.FirstName,
		LastName:     n.LastName,
		Email:        n.Email,
		Date:         n.Date.Format(domain.DateFormat),
		StartTime:    n.StartTime.String(),
		IsInstructor: n.IsInstructor,
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainNotificationList конвертирует список domain моделей в response
func FromDomainNotificationList(notifications []*domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}

	for _, n := range notifications {
		if !n.IsRead {
			resp.UnreadCount++
		}
		resp.Notifications = append(resp.Notifications, *FromDomainNotification(n))
	}

	return resp
}
