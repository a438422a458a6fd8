package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

//go:embed default_seed.yaml
var defaultSeed []byte

// Seed начальные данные справочников, каталога слотов и правил
type Seed struct {
	Slots         []SlotSeed         `yaml:"slots"`
	SlotOverrides []SlotOverrideSeed `yaml:"slot_overrides"`
	Equipment     []EquipmentSeed    `yaml:"equipment"`
	Supervisors   []SupervisorSeed   `yaml:"supervisors"`
	Students      []StudentSeed      `yaml:"students"`
	Holidays      []HolidaySeed      `yaml:"holidays"`
	Rules         []RuleSeed         `yaml:"rules"`
	Breaks        []BreakSeed        `yaml:"breaks"`
}

// SlotSeed слот каталога
type SlotSeed struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	StartTime string  `yaml:"start_time"`
	EndTime   string  `yaml:"end_time"`
	BaseCost  float64 `yaml:"base_cost"`
}

// GenerateSeed параметры равномерной сетки слотов
type GenerateSeed struct {
	Open            string  `yaml:"open"`
	Close           string  `yaml:"close"`
	DurationMinutes int     `yaml:"duration_minutes"`
	BaseCost        float64 `yaml:"base_cost"`
}

// SlotOverrideSeed собственный каталог оборудования: явный список или сетка
type SlotOverrideSeed struct {
	EquipmentID string        `yaml:"equipment_id"`
	Slots       []SlotSeed    `yaml:"slots,omitempty"`
	Generate    *GenerateSeed `yaml:"generate,omitempty"`
}

// EquipmentSeed единица оборудования
type EquipmentSeed struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Status      string `yaml:"status"`
	Place       string `yaml:"place"`
	Description string `yaml:"description"`
	LabHours    string `yaml:"lab_hours"`
}

// SupervisorSeed руководитель
type SupervisorSeed struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Email      string  `yaml:"email"`
	Phone      string  `yaml:"phone"`
	Department string  `yaml:"department"`
	Budget     float64 `yaml:"budget"`
}

// StudentSeed студент
type StudentSeed struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Department   string `yaml:"department"`
	SupervisorID string `yaml:"supervisor_id"`
}

// HolidaySeed праздник
type HolidaySeed struct {
	Name        string `yaml:"name"`
	Date        string `yaml:"date"` // "2025-10-20"
	Kind        string `yaml:"type"` // full | half
	Description string `yaml:"description"`
}

// RuleSeed правило бронирования в формате админки
type RuleSeed struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"type"`
	Value       string `yaml:"value"`
	Enabled     bool   `yaml:"enabled"`
	Description string `yaml:"description"`
}

// BreakSeed технический перерыв
type BreakSeed struct {
	Name      string   `yaml:"name"`
	StartTime string   `yaml:"start_time"`
	EndTime   string   `yaml:"end_time"`
	Days      []string `yaml:"days"`
	Enabled   bool     `yaml:"enabled"`
}

// LoadSeed читает YAML файл начальных данных; пустой path - встроенный набор
func LoadSeed(path string) (*Seed, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed: %w", err)
		}
	}
	return ParseSeed(data)
}

// ParseSeed разбирает YAML и проверяет ссылки между сущностями
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("validate seed: %w", err)
	}
	return &seed, nil
}

// Validate проверяет обязательные поля и ссылки; формат значений проверяется при конвертации
func (s *Seed) Validate() error {
	if len(s.Slots) == 0 {
		return fmt.Errorf("no slots defined")
	}

	equipment := make(map[string]bool, len(s.Equipment))
	for i, e := range s.Equipment {
		if e.ID == "" || e.Name == "" {
			return fmt.Errorf("equipment[%d]: id and name are required", i)
		}
		if equipment[e.ID] {
			return fmt.Errorf("equipment[%d]: duplicate id %q", i, e.ID)
		}
		equipment[e.ID] = true
	}

	supervisors := make(map[string]bool, len(s.Supervisors))
	for i, sv := range s.Supervisors {
		if sv.ID == "" {
			return fmt.Errorf("supervisors[%d]: id is required", i)
		}
		if supervisors[sv.ID] {
			return fmt.Errorf("supervisors[%d]: duplicate id %q", i, sv.ID)
		}
		supervisors[sv.ID] = true
	}

	for i, st := range s.Students {
		if st.ID == "" {
			return fmt.Errorf("students[%d]: id is required", i)
		}
		if !supervisors[st.SupervisorID] {
			return fmt.Errorf("students[%d]: unknown supervisor %q", i, st.SupervisorID)
		}
	}

	for i, o := range s.SlotOverrides {
		if !equipment[o.EquipmentID] {
			return fmt.Errorf("slot_overrides[%d]: unknown equipment %q", i, o.EquipmentID)
		}
		if (len(o.Slots) == 0) == (o.Generate == nil) {
			return fmt.Errorf("slot_overrides[%d]: exactly one of slots or generate is required", i)
		}
	}

	return nil
}

// ToDomain конвертирует слот
func (s SlotSeed) ToDomain() domain.Slot {
	return domain.Slot{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: types.TimeString(s.StartTime),
		EndTime:   types.TimeString(s.EndTime),
		BaseCost:  s.BaseCost,
	}
}

// DefaultSlots каталог по умолчанию
func (s *Seed) DefaultSlots() []domain.Slot {
	return slotsToDomain(s.Slots)
}

// OverrideSlots явный список слотов override; nil, если задана сетка
func (o SlotOverrideSeed) OverrideSlots() []domain.Slot {
	if len(o.Slots) == 0 {
		return nil
	}
	return slotsToDomain(o.Slots)
}

func slotsToDomain(seeds []SlotSeed) []domain.Slot {
	slots := make([]domain.Slot, 0, len(seeds))
	for _, s := range seeds {
		slots = append(slots, s.ToDomain())
	}
	return slots
}

// ToDomain конвертирует оборудование
func (e EquipmentSeed) ToDomain() (domain.Equipment, error) {
	status, err := domain.ParseEquipmentStatus(e.Status)
	if err != nil {
		return domain.Equipment{}, fmt.Errorf("equipment %q: %w", e.ID, err)
	}
	return domain.Equipment{
		ID:          e.ID,
		Name:        e.Name,
		Status:      status,
		Place:       e.Place,
		Description: e.Description,
		LabHours:    e.LabHours,
	}, nil
}

// ToDomain конвертирует руководителя
func (s SupervisorSeed) ToDomain() domain.Supervisor {
	return domain.Supervisor{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Department: s.Department,
		Budget:     s.Budget,
	}
}

// ToDomain конвертирует студента
func (s StudentSeed) ToDomain() domain.Student {
	return domain.Student{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Department:   s.Department,
		SupervisorID: s.SupervisorID,
	}
}

// ToDomain конвертирует праздник
func (h HolidaySeed) ToDomain() (*domain.Holiday, error) {
	date, err := domain.ParseDate(h.Date)
	if err != nil {
		return nil, fmt.Errorf("holiday %q: %w", h.Name, err)
	}
	kind, err := domain.ParseHolidayKind(h.Kind)
	if err != nil {
		return nil, fmt.Errorf("holiday %q: %w", h.Name, err)
	}
	return &domain.Holiday{Name: h.Name, Date: date, Kind: kind, Description: h.Description}, nil
}

// ToDomain конвертирует правило
func (r RuleSeed) ToDomain() (*domain.BookingRule, error) {
	kind, err := domain.ParseBookingRuleKind(r.Kind)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", r.Name, err)
	}
	rule := &domain.BookingRule{
		Name:        r.Name,
		Kind:        kind,
		Enabled:     r.Enabled,
		Description: r.Description,
	}
	if err := rule.ApplyValue(r.Value); err != nil {
		return nil, fmt.Errorf("rule %q: %w", r.Name, err)
	}
	return rule, nil
}

// ToDomain конвертирует перерыв
func (b BreakSeed) ToDomain() (*domain.MaintenanceBreak, error) {
	days := make([]time.Weekday, 0, len(b.Days))
	for _, d := range b.Days {
		wd, err := domain.ParseWeekday(d)
		if err != nil {
			return nil, fmt.Errorf("break %q: %w", b.Name, err)
		}
		days = append(days, wd)
	}
	br := &domain.MaintenanceBreak{
		Name:      strings.TrimSpace(b.Name),
		StartTime: types.TimeString(b.StartTime),
		EndTime:   types.TimeString(b.EndTime),
		Weekdays:  days,
		Enabled:   b.Enabled,
	}
	if err := br.Validate(); err != nil {
		return nil, fmt.Errorf("break %q: %w", b.Name, err)
	}
	return br, nil
}
