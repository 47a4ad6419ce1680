package domain

import "time"

// BlockedDate is a calendar date administratively excluded from enrollment.
type BlockedDate struct {
	ID        int64
	Date      time.Time
	Reason    string
	CreatedAt time.Time
}
