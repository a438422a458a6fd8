package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// BookingRuleKind type of booking restriction
type BookingRuleKind string

const (
	RuleWeekday        BookingRuleKind = "weekday"
	RuleTimeRange      BookingRuleKind = "time_range"
	RuleHolidayClosure BookingRuleKind = "holiday"
)

func ParseBookingRuleKind(s string) (BookingRuleKind, error) {
	switch kind := BookingRuleKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case RuleWeekday, RuleTimeRange, RuleHolidayClosure:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: unknown rule kind %q", ErrInvalidInput, s)
	}
}

// BookingRule restricts bookable weekdays or hours. Disabled rules have no effect.
// Only the fields of the rule's Kind are meaningful:
//   - RuleWeekday: Weekday
//   - RuleTimeRange: RangeStart, RangeEnd
//   - RuleHolidayClosure: ClosedOnHolidays
type BookingRule struct {
	ID          string
	Name        string
	Kind        BookingRuleKind
	Enabled     bool
	Description string

	Weekday          time.Weekday
	RangeStart       types.TimeString
	RangeEnd         types.TimeString
	ClosedOnHolidays bool
}

// Validate checks kind-specific parameters
func (r *BookingRule) Validate() error {
	switch r.Kind {
	case RuleWeekday:
		if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
			return fmt.Errorf("%w: weekday must be 0-6", ErrInvalidInput)
		}
	case RuleTimeRange:
		if err := r.RangeStart.Validate(); err != nil {
			return fmt.Errorf("%w: range start: %v", ErrInvalidInput, err)
		}
		if err := r.RangeEnd.Validate(); err != nil {
			return fmt.Errorf("%w: range end: %v", ErrInvalidInput, err)
		}
		if !r.RangeStart.IsBefore(r.RangeEnd) {
			return fmt.Errorf("%w: range start must be before range end", ErrInvalidInput)
		}
	case RuleHolidayClosure:
	default:
		return fmt.Errorf("%w: unknown rule kind %q", ErrInvalidInput, r.Kind)
	}
	return nil
}

// Value renders the kind-specific parameter the way the admin UI shows it
// ("6", "09:00-18:00", "true").
func (r *BookingRule) Value() string {
	switch r.Kind {
	case RuleWeekday:
		return fmt.Sprintf("%d", int(r.Weekday))
	case RuleTimeRange:
		return fmt.Sprintf("%s-%s", r.RangeStart, r.RangeEnd)
	case RuleHolidayClosure:
		return fmt.Sprintf("%t", r.ClosedOnHolidays)
	default:
		return ""
	}
}

// ApplyValue parses the admin UI value format for the rule's kind.
func (r *BookingRule) ApplyValue(value string) error {
	value = strings.TrimSpace(value)
	switch r.Kind {
	case RuleWeekday:
		wd, err := ParseWeekday(value)
		if err != nil {
			return err
		}
		r.Weekday = wd
	case RuleTimeRange:
		parts := strings.Split(value, "-")
		if len(parts) != 2 {
			return fmt.Errorf("%w: time range must look like HH:MM-HH:MM", ErrInvalidInput)
		}
		r.RangeStart = types.TimeString(strings.TrimSpace(parts[0]))
		r.RangeEnd = types.TimeString(strings.TrimSpace(parts[1]))
	case RuleHolidayClosure:
		switch strings.ToLower(value) {
		case "true", "yes", "1":
			r.ClosedOnHolidays = true
		case "false", "no", "0":
			r.ClosedOnHolidays = false
		default:
			return fmt.Errorf("%w: holiday closure must be true or false", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown rule kind %q", ErrInvalidInput, r.Kind)
	}
	return r.Validate()
}

// MaintenanceBreak weekly blackout window [StartTime, EndTime) on the listed weekdays
type MaintenanceBreak struct {
	ID        string
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString
	Weekdays  []time.Weekday
	Enabled   bool
}

// Validate checks the window and weekday set
func (b *MaintenanceBreak) Validate() error {
	if err := b.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if err := b.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}
	if !b.StartTime.IsBefore(b.EndTime) {
		return fmt.Errorf("%w: break start must be before break end", ErrInvalidInput)
	}
	if len(b.Weekdays) == 0 {
		return fmt.Errorf("%w: break must apply to at least one weekday", ErrInvalidInput)
	}
	return nil
}

// AppliesOn returns true if the break recurs on the weekday
func (b *MaintenanceBreak) AppliesOn(weekday time.Weekday) bool {
	for _, wd := range b.Weekdays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// Overlaps reports a real intersection with [start, end); touching boundaries do not overlap.
func (b *MaintenanceBreak) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}
