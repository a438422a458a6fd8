package domain

import (
	"fmt"
	"strings"
)

// EquipmentStatus lifecycle state of an equipment item
type EquipmentStatus string

const (
	EquipmentActive      EquipmentStatus = "active"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentRetired     EquipmentStatus = "retired"
)

// ParseEquipmentStatus accepts any letter case ("Active", "active").
func ParseEquipmentStatus(s string) (EquipmentStatus, error) {
	switch status := EquipmentStatus(strings.ToLower(strings.TrimSpace(s))); status {
	case EquipmentActive, EquipmentMaintenance, EquipmentRetired:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown equipment status %q", ErrInvalidInput, s)
	}
}

// Equipment represents a bookable lab device.
// Everything except Status is immutable after seeding.
type Equipment struct {
	ID          string
	Name        string
	Status      EquipmentStatus
	Place       string
	Description string
	LabHours    string
}

// IsBookable returns true if the equipment can accept new bookings
func (e *Equipment) IsBookable() bool {
	return e.Status == EquipmentActive
}

// Matches reports whether the lowercase query occurs in name, place or description.
func (e *Equipment) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Place), q) ||
		strings.Contains(strings.ToLower(e.Description), q)
}

// EquipmentFilter фильтр каталога оборудования
type EquipmentFilter struct {
	Query  string           // Поиск по названию, месту, описанию
	Status *EquipmentStatus // Фильтр по статусу (опционально)
}
