package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusDraft     BookingStatus = "draft"
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch status := BookingStatus(strings.ToLower(strings.TrimSpace(s))); status {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, s)
	}
}

// transitions допустимые переходы статусов.
// Draft существует только на клиенте и в хранилище не попадает.
var transitions = map[BookingStatus][]BookingStatus{
	StatusDraft:    {StatusPending},
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusCompleted},
}

// CanTransition returns true if the workflow allows from -> to
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates a status change; any pair outside the workflow fails with ErrInvalidTransition.
func Transition(from, to BookingStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// Booking represents an equipment reservation for one slot on one date
type Booking struct {
	ID           string
	EquipmentID  string
	StudentID    string
	SupervisorID string
	Date         time.Time
	SlotID       string
	Status       BookingStatus
	Cost         float64

	RejectionReason *string
	DecidedAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	for _, s := range ActiveStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// Key returns the serialization key of the booking's slot
func (b *Booking) Key() string {
	return SlotKey(b.EquipmentID, b.Date, b.SlotID)
}

// SlotKey builds the "equipmentId|date|slotId" key guarding one slot
func SlotKey(equipmentID string, date time.Time, slotID string) string {
	return equipmentID + "|" + date.Format(DateFormat) + "|" + slotID
}

// BookingFilter фильтр списка бронирований; пустые поля не ограничивают выборку
type BookingFilter struct {
	EquipmentID  string
	StudentID    string
	SupervisorID string
	SlotID       string
	Statuses     []BookingStatus
	StartDate    *time.Time // Включительно
	EndDate      *time.Time // Включительно
	ActiveOnly   bool       // Только Pending и Approved
}

// Match проверяет, подходит ли бронирование под фильтр
func (f *BookingFilter) Match(b *Booking) bool {
	if f.EquipmentID != "" && b.EquipmentID != f.EquipmentID {
		return false
	}
	if f.StudentID != "" && b.StudentID != f.StudentID {
		return false
	}
	if f.SupervisorID != "" && b.SupervisorID != f.SupervisorID {
		return false
	}
	if f.SlotID != "" && b.SlotID != f.SlotID {
		return false
	}
	if f.ActiveOnly && !b.IsActive() {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if b.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.StartDate != nil && b.Date.Before(DateOnly(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && b.Date.After(DateOnly(*f.EndDate)) {
		return false
	}
	return true
}
