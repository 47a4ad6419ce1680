package domain

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// NotificationKind classifies an audit entry.
type NotificationKind string

const (
	KindNew          NotificationKind = "new"
	KindCancellation NotificationKind = "cancellation"
)

// Notification is an audit record of an enrollment or cancellation event,
// surfaced in the admin panel. Delivery (email) is handled separately.
type Notification struct {
	ID           int64
	Kind         NotificationKind
	FirstName    string
	LastName     string
	Email        string
	Date         time.Time
	StartTime    types.TimeString
	IsInstructor bool
	IsRead       bool
	CreatedAt    time.Time
}
