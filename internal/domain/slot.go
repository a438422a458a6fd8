package domain

import (
	"fmt"

	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// Slot is a fixed window in the daily catalog
type Slot struct {
	ID        string
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString
	BaseCost  float64
}

// Validate checks the time range and cost
func (s *Slot) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}
	if err := s.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: slot %s start: %v", ErrInvalidInput, s.ID, err)
	}
	if err := s.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: slot %s end: %v", ErrInvalidInput, s.ID, err)
	}
	if !s.StartTime.IsBefore(s.EndTime) {
		return fmt.Errorf("%w: slot %s start must be before end", ErrInvalidInput, s.ID)
	}
	if s.BaseCost < 0 {
		return fmt.Errorf("%w: slot %s cost must not be negative", ErrInvalidInput, s.ID)
	}
	return nil
}

// SlotStatus availability of one slot on one date.
// Only one reason is reported even if several apply.
type SlotStatus string

const (
	SlotAvailable                SlotStatus = "available"
	SlotBookedByOther            SlotStatus = "booked_by_other"
	SlotBlockedByHoliday         SlotStatus = "blocked_by_holiday"
	SlotBlockedByRule            SlotStatus = "blocked_by_rule"
	SlotBlockedByBreak           SlotStatus = "blocked_by_break"
	SlotBlockedByEquipmentStatus SlotStatus = "blocked_by_equipment_status"
)

// SlotAvailability resolved status of a catalog slot
type SlotAvailability struct {
	Slot   Slot
	Status SlotStatus
}

// IsAvailable returns true if the slot can be requested
func (s *SlotAvailability) IsAvailable() bool {
	return s.Status == SlotAvailable
}
