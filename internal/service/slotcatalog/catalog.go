package slotcatalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// Catalog фиксированная дневная сетка слотов с переопределениями для отдельного оборудования
type Catalog struct {
	mu        sync.RWMutex
	defaults  []domain.Slot
	overrides map[string][]domain.Slot
}

// NewCatalog создает каталог из общей сетки слотов
func NewCatalog(defaults []domain.Slot) (*Catalog, error) {
	normalized, err := normalize(defaults)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		defaults:  normalized,
		overrides: make(map[string][]domain.Slot),
	}, nil
}

// DefaultSlots сетка по умолчанию: семь двухчасовых слотов с 08:00 до 22:00
func DefaultSlots() []domain.Slot {
	return []domain.Slot{
		{ID: "morning-1", Name: "Early Morning (8-10 AM)", StartTime: "08:00", EndTime: "10:00", BaseCost: 50},
		{ID: "morning-2", Name: "Late Morning (10 AM-12 PM)", StartTime: "10:00", EndTime: "12:00", BaseCost: 50},
		{ID: "afternoon-1", Name: "Early Afternoon (12-2 PM)", StartTime: "12:00", EndTime: "14:00", BaseCost: 60},
		{ID: "afternoon-2", Name: "Late Afternoon (2-4 PM)", StartTime: "14:00", EndTime: "16:00", BaseCost: 60},
		{ID: "evening-1", Name: "Early Evening (4-6 PM)", StartTime: "16:00", EndTime: "18:00", BaseCost: 70},
		{ID: "evening-2", Name: "Late Evening (6-8 PM)", StartTime: "18:00", EndTime: "20:00", BaseCost: 70},
		{ID: "night-1", Name: "Night (8-10 PM)", StartTime: "20:00", EndTime: "22:00", BaseCost: 80},
	}
}

// SetOverride заменяет сетку слотов для конкретного оборудования
func (c *Catalog) SetOverride(equipmentID string, slots []domain.Slot) error {
	if equipmentID == "" {
		return fmt.Errorf("%w: equipment id is required", ErrInvalidCatalog)
	}
	normalized, err := normalize(slots)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.overrides[equipmentID] = normalized
	return nil
}

// SlotsForDate возвращает упорядоченную по времени сетку слотов оборудования на дату.
// Сетка не зависит от даты; дата передается, чтобы политика могла меняться по дням.
func (c *Catalog) SlotsForDate(ctx context.Context, equipmentID string, date time.Time) ([]domain.Slot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	slots, ok := c.overrides[equipmentID]
	if !ok {
		slots = c.defaults
	}
	return append([]domain.Slot(nil), slots...), nil
}

// SlotByID ищет слот в сетке оборудования на дату
func (c *Catalog) SlotByID(ctx context.Context, equipmentID string, date time.Time, slotID string) (*domain.Slot, error) {
	slots, err := c.SlotsForDate(ctx, equipmentID, date)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		if slots[i].ID == slotID {
			return &slots[i], nil
		}
	}
	return nil, fmt.Errorf("%w: equipment=%s slot=%s", ErrSlotNotFound, equipmentID, slotID)
}

// Generate строит сетку от open до close с фиксированным шагом durationMinutes.
// Последний слот, выходящий за close, отбрасывается.
func Generate(open, close types.TimeString, durationMinutes int, baseCost float64) ([]domain.Slot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive", ErrInvalidCatalog)
	}
	if err := open.Validate(); err != nil {
		return nil, fmt.Errorf("%w: open time: %v", ErrInvalidCatalog, err)
	}
	if err := close.Validate(); err != nil {
		return nil, fmt.Errorf("%w: close time: %v", ErrInvalidCatalog, err)
	}

	slots := make([]domain.Slot, 0)
	current := open
	for current.IsBefore(close) {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil || end.IsAfter(close) {
			break
		}
		slots = append(slots, domain.Slot{
			ID:        fmt.Sprintf("slot-%s", current),
			Name:      fmt.Sprintf("%s-%s", current, end),
			StartTime: current,
			EndTime:   end,
			BaseCost:  baseCost,
		})
		current = end
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: no slot fits between %s and %s", ErrInvalidCatalog, open, close)
	}
	return slots, nil
}

// normalize проверяет слоты, сортирует их по времени начала и запрещает пересечения
func normalize(slots []domain.Slot) ([]domain.Slot, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
	}

	result := append([]domain.Slot(nil), slots...)
	seen := make(map[string]bool, len(result))
	for i := range result {
		if err := result[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		if seen[result[i].ID] {
			return nil, fmt.Errorf("%w: duplicate slot id %s", ErrInvalidCatalog, result[i].ID)
		}
		seen[result[i].ID] = true
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	for i := 1; i < len(result); i++ {
		if result[i].StartTime.IsBefore(result[i-1].EndTime) {
			return nil, fmt.Errorf("%w: slots %s and %s overlap", ErrInvalidCatalog, result[i-1].ID, result[i].ID)
		}
	}
	return result, nil
}
