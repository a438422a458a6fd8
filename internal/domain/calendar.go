package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateOnly strips the wall-clock part, keeping the calendar day in UTC.
// All dates stored by the service are normalized this way.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, s)
	}
	return DateOnly(t), nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts an English day name ("monday") or a number 0-6 (0 = Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if wd, ok := weekdayNames[v]; ok {
		return wd, nil
	}
	if len(v) == 1 && v[0] >= '0' && v[0] <= '6' {
		return time.Weekday(v[0] - '0'), nil
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, s)
}
