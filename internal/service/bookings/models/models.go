package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPeriod возвращается при некорректном периоде
	ErrInvalidPeriod = errors.New("invalid period, expected upcoming or past")
)

// Period выборка относительно текущей даты
type Period string

const (
	PeriodAll      Period = ""
	PeriodUpcoming Period = "upcoming" // Дата бронирования сегодня или позже
	PeriodPast     Period = "past"     // Дата бронирования раньше сегодняшней
)

// Request модели

// ListBookingsRequest запрос на получение истории бронирований
type ListBookingsRequest struct {
	StudentID    string  `json:"studentId,omitempty"`
	SupervisorID string  `json:"supervisorId,omitempty"`
	EquipmentID  string  `json:"equipmentId,omitempty"`
	Status       *string `json:"status,omitempty"`
	Period       Period  `json:"period,omitempty"`
	Query        string  `json:"q,omitempty"` // Поиск по названию оборудования
}

// ToDomainFilter конвертирует request в domain фильтр
// Период раскрывается относительно today
func (r *ListBookingsRequest) ToDomainFilter(today time.Time) (domain.BookingFilter, error) {
	filter := domain.BookingFilter{
		EquipmentID:  r.EquipmentID,
		StudentID:    r.StudentID,
		SupervisorID: r.SupervisorID,
	}

	if r.Status != nil && *r.Status != "" {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, ErrInvalidStatus
		}
		filter.Statuses = []domain.BookingStatus{status}
	}

	today = domain.DateOnly(today)
	switch Period(strings.ToLower(string(r.Period))) {
	case PeriodAll:
	case PeriodUpcoming:
		filter.StartDate = &today
	case PeriodPast:
		yesterday := today.AddDate(0, 0, -1)
		filter.EndDate = &yesterday
	default:
		return filter, ErrInvalidPeriod
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string  `json:"id"`
	EquipmentID     string  `json:"equipmentId"`
	EquipmentName   string  `json:"equipmentName,omitempty"`
	StudentID       string  `json:"studentId"`
	SupervisorID    string  `json:"supervisorId"`
	Date            string  `json:"date"` // "2025-06-03"
	SlotID          string  `json:"slotId"`
	SlotName        string  `json:"slotName,omitempty"`
	StartTime       string  `json:"startTime,omitempty"` // "08:00"
	EndTime         string  `json:"endTime,omitempty"`
	Status          string  `json:"status"`
	Cost            float64 `json:"cost"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	DecidedAt       *string `json:"decidedAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO.
// equipment и slot опциональны и используются для денормализации названий.
func FromDomainBooking(b *domain.Booking, equipment *domain.Equipment, slot *domain.Slot) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		EquipmentID:     b.EquipmentID,
		StudentID:       b.StudentID,
		SupervisorID:    b.SupervisorID,
		Date:            b.Date.Format(domain.DateFormat),
		SlotID:          b.SlotID,
		Status:          string(b.Status),
		Cost:            b.Cost,
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if equipment != nil {
		resp.EquipmentName = equipment.Name
	}
	if slot != nil {
		resp.SlotName = slot.Name
		resp.StartTime = slot.StartTime.String()
		resp.EndTime = slot.EndTime.String()
	}

	// Конвертируем DecidedAt в строку ISO 8601
	if b.DecidedAt != nil {
		decided := b.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decided
	}

	return resp
}
