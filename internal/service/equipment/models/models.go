package models

import "github.com/m04kA/SMC-LabBookingService/internal/domain"

// Request модели

// UpdateStatusRequest запрос на смену статуса оборудования
type UpdateStatusRequest struct {
	Status string `json:"status"` // active | maintenance | retired
}

// Response модели

// EquipmentResponse единица оборудования
type EquipmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Bookable    bool   `json:"bookable"`
	Place       string `json:"place"`
	Description string `json:"description,omitempty"`
	LabHours    string `json:"labHours,omitempty"`
}

// EquipmentListResponse результат поиска по каталогу
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
	Total     int                 `json:"total"`
}

// EquipmentStatsResponse счетчики каталога по статусам
type EquipmentStatsResponse struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Maintenance int `json:"maintenance"`
	Retired     int `json:"retired"`
}

// FromDomainEquipment конвертирует domain модель в response
func FromDomainEquipment(e *domain.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:          e.ID,
		Name:        e.Name,
		Status:      string(e.Status),
		Bookable:    e.IsBookable(),
		Place:       e.Place,
		Description: e.Description,
		LabHours:    e.LabHours,
	}
}

// FromDomainList конвертирует список
func FromDomainList(items []*domain.Equipment) *EquipmentListResponse {
	resp := &EquipmentListResponse{Equipment: make([]EquipmentResponse, 0, len(items))}
	for _, e := range items {
		resp.Equipment = append(resp.Equipment, FromDomainEquipment(e))
	}
	resp.Total = len(resp.Equipment)
	return resp
}
