package domain

import "time"

// AvailableDate describes one bookable date in the public listing.
type AvailableDate struct {
	Date          time.Time
	OccupiedCount int
}

// FreeSlots returns the number of slots still open on the date.
func (d *AvailableDate) FreeSlots() int {
	free := DailyCapacity - d.OccupiedCount
	if free < 0 {
		return 0
	}
	return free
}

// IsFull returns true if no further enrollments fit on the date.
func (d *AvailableDate) IsFull() bool {
	return d.OccupiedCount >= DailyCapacity
}

// IsEmpty returns true if the date has no enrollments at all.
// Only empty dates can be claimed by an instructor.
func (d *AvailableDate) IsEmpty() bool {
	return d.OccupiedCount == 0
}
