package models

import "time"

// Request модели

// BookingReportRequest фильтры отчета; пустые поля не ограничивают выборку
type BookingReportRequest struct {
	From         *time.Time // Включительно
	To           *time.Time // Включительно
	EquipmentID  string
	SupervisorID string
	Department   string
}

// Response модели

// BookingReportResponse сводный отчет по бронированиям
type BookingReportResponse struct {
	From          string         `json:"from,omitempty"`
	To            string         `json:"to,omitempty"`
	TotalBookings int            `json:"totalBookings"`
	ByStatus      map[string]int `json:"byStatus"`
	Revenue       float64        `json:"revenue"` // Сумма стоимости Approved и Completed

	Equipment   []EquipmentUsage     `json:"equipment"`
	Supervisors []SupervisorSpending `json:"supervisors"`
}

// EquipmentUsage использование оборудования за период
type EquipmentUsage struct {
	EquipmentID   string  `json:"equipmentId"`
	EquipmentName string  `json:"equipmentName"`
	Bookings      int     `json:"bookings"`
	Revenue       float64 `json:"revenue"`
}

// SupervisorSpending расходы руководителя относительно бюджета
type SupervisorSpending struct {
	SupervisorID string  `json:"supervisorId"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	Budget       float64 `json:"budget"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	Bookings     int     `json:"bookings"`
}
