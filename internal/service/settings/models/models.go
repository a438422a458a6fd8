package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// Request модели

// CreateHolidayRequest запрос на добавление праздника
type CreateHolidayRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"` // "2025-10-20"
	Kind        string `json:"type"` // "full" | "half", по умолчанию full
	Description string `json:"description,omitempty"`
}

// ToDomain конвертирует request в domain модель с валидацией
func (r *CreateHolidayRequest) ToDomain() (*domain.Holiday, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", domain.ErrInvalidInput, domain.MaxNameLength)
	}
	if len(r.Description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description is too long", domain.ErrInvalidInput)
	}
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	kind, err := domain.ParseHolidayKind(r.Kind)
	if err != nil {
		return nil, err
	}
	return &domain.Holiday{Name: name, Date: date, Kind: kind, Description: r.Description}, nil
}

// CreateRuleRequest запрос на добавление правила бронирования
// Value зависит от типа: "6" для weekday, "09:00-18:00" для time_range, "true" для holiday
type CreateRuleRequest struct {
	Name        string `json:"name"`
	Kind        string `json:"type"`
	Value       string `json:"value"`
	Enabled     *bool  `json:"enabled,omitempty"` // По умолчанию true
	Description string `json:"description,omitempty"`
}

// ToDomain конвертирует request в domain модель с валидацией
func (r *CreateRuleRequest) ToDomain() (*domain.BookingRule, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", domain.ErrInvalidInput, domain.MaxNameLength)
	}
	if len(r.Description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description is too long", domain.ErrInvalidInput)
	}
	kind, err := domain.ParseBookingRuleKind(r.Kind)
	if err != nil {
		return nil, err
	}
	rule := &domain.BookingRule{
		Name:        name,
		Kind:        kind,
		Enabled:     r.Enabled == nil || *r.Enabled,
		Description: r.Description,
	}
	if err := rule.ApplyValue(r.Value); err != nil {
		return nil, err
	}
	return rule, nil
}

// CreateBreakRequest запрос на добавление технического перерыва
type CreateBreakRequest struct {
	Name      string   `json:"name"`
	StartTime string   `json:"startTime"` // "13:00"
	EndTime   string   `json:"endTime"`   // "14:00"
	Days      []string `json:"days"`      // ["Monday", "Friday"] или ["1", "5"]
	Enabled   *bool    `json:"enabled,omitempty"`
}

// ToDomain конвертирует request в domain модель с валидацией
func (r *CreateBreakRequest) ToDomain() (*domain.MaintenanceBreak, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", domain.ErrInvalidInput, domain.MaxNameLength)
	}

	weekdays := make([]time.Weekday, 0, len(r.Days))
	seen := make(map[time.Weekday]bool)
	for _, d := range r.Days {
		wd, err := domain.ParseWeekday(d)
		if err != nil {
			return nil, err
		}
		if !seen[wd] {
			seen[wd] = true
			weekdays = append(weekdays, wd)
		}
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", domain.ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", domain.ErrInvalidInput, err)
	}

	b := &domain.MaintenanceBreak{
		Name:      name,
		StartTime: start,
		EndTime:   end,
		Weekdays:  weekdays,
		Enabled:   r.Enabled == nil || *r.Enabled,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Response модели

// HolidayResponse ответ с данными праздника
type HolidayResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Kind        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// RuleResponse ответ с данными правила бронирования
type RuleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"type"`
	Value       string `json:"value"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description,omitempty"`
}

// BreakResponse ответ с данными технического перерыва
type BreakResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Days      []string `json:"days"`
	Enabled   bool     `json:"enabled"`
}

// Методы конвертации

// FromDomainHoliday конвертирует domain модель в DTO
func FromDomainHoliday(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format(domain.DateFormat),
		Kind:        string(h.Kind),
		Description: h.Description,
	}
}

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.BookingRule) RuleResponse {
	return RuleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Kind:        string(r.Kind),
		Value:       r.Value(),
		Enabled:     r.Enabled,
		Description: r.Description,
	}
}

// FromDomainBreak конвертирует domain модель в DTO
func FromDomainBreak(b *domain.MaintenanceBreak) BreakResponse {
	days := make([]string, 0, len(b.Weekdays))
	for _, wd := range b.Weekdays {
		days = append(days, wd.String())
	}
	return BreakResponse{
		ID:        b.ID,
		Name:      b.Name,
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Days:      days,
		Enabled:   b.Enabled,
	}
}
