package domain

// Capacity constants
const (
	// DailyCapacity is the fixed number of laboratory slots per date.
	DailyCapacity = 8

	// AvailableDatesHorizonDays is how far ahead the public date listing looks.
	AvailableDatesHorizonDays = 30
)

// Enrollment window: times are compared in minutes since midnight,
// both bounds inclusive (18:40 .. 22:00).
const (
	WindowOpensMinutes  = 18*60 + 40
	WindowClosesMinutes = 22 * 60
)

// Business validation constants
const (
	MaxNameLength         = 100
	MaxEmailLength        = 255
	MaxAcademicYearLength = 50
	MaxBlockReasonLength  = 500
)

// DefaultBlockReason is stored when a date is blocked without a reason.
const DefaultBlockReason = "date unavailable"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
