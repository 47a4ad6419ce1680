package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat is the canonical HH:MM representation used across the service.
const TimeFormat = "15:04"

// ErrInvalidTimeString is returned when a string cannot be parsed as HH:MM.
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// TimeString represents a time of day as an "HH:MM" string.
// It is stored as text to match the TIME column representation and to keep
// JSON payloads human-readable.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses s as "HH:MM" and returns it as a TimeString.
// "HH:MM:SS" values (as returned by Postgres TIME columns) are accepted and
// truncated to minute precision.
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	if _, err := time.Parse(TimeFormat, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" string.
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// MinutesSinceMidnight returns the value converted to minutes since 00:00.
func (t TimeString) MinutesSinceMidnight() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of
// minutes. The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(TimeFormat)), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Both values must be well-formed; malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	b, err := other.MinutesSinceMidnight()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}
