package domain

import (
	"fmt"
	"strings"
	"time"
)

// HolidayKind how much of the day a holiday closes
type HolidayKind string

const (
	HolidayFull HolidayKind = "full"
	HolidayHalf HolidayKind = "half"
)

func ParseHolidayKind(s string) (HolidayKind, error) {
	switch kind := HolidayKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case HolidayFull, HolidayHalf:
		return kind, nil
	case "":
		return HolidayFull, nil
	default:
		return "", fmt.Errorf("%w: unknown holiday kind %q", ErrInvalidInput, s)
	}
}

// Holiday closes the lab for the whole day (Full) or from the half-day cutoff on (Half)
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Kind        HolidayKind
	Description string
}
