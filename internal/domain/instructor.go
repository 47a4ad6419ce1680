package domain

import "time"

// Instructor is a registered email entitled to claim an entire date's
// capacity in a single enrollment.
type Instructor struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
