package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout    = "15:04"
	minutesPerDay = 24 * 60
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString is a wall-clock time of day in "HH:MM" format.
// "24:00" is accepted as the end-of-day boundary.
type TimeString string

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes out of range", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate checks the "HH:MM" format.
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// Minutes returns minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeString
	}
	if s == "24:00" {
		return minutesPerDay, nil
	}
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, ErrInvalidTimeString
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsZero returns true if the time is not set
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.mustMinutes() < other.mustMinutes()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.mustMinutes() > other.mustMinutes()
}

// Equal reports whether both values denote the same minute.
func (t TimeString) Equal(other TimeString) bool {
	return t.mustMinutes() == other.mustMinutes()
}

// AddMinutes shifts the time forward; the result may not pass 24:00.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

func (t TimeString) String() string {
	return string(t)
}

// mustMinutes treats malformed values as midnight; constructors validate input.
func (t TimeString) mustMinutes() int {
	m, err := t.Minutes()
	if err != nil {
		return 0
	}
	return m
}
