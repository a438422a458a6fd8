package models

import "github.com/m04kA/SMC-LabBookingService/internal/domain"

// SupervisorResponse научный руководитель с бюджетом
type SupervisorResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone,omitempty"`
	Department string  `json:"department"`
	Budget     float64 `json:"budget"`
}

// SupervisorListResponse результат поиска по справочнику
type SupervisorListResponse struct {
	Supervisors []SupervisorResponse `json:"supervisors"`
	Departments []string             `json:"departments"`
	Total       int                  `json:"total"`
}

// FromDomainSupervisor конвертирует domain модель в response
func FromDomainSupervisor(s *domain.Supervisor) SupervisorResponse {
	return SupervisorResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Department: s.Department,
		Budget:     s.Budget,
	}
}

// FromDomainList конвертирует список
func FromDomainList(items []*domain.Supervisor, departments []string) *SupervisorListResponse {
	resp := &SupervisorListResponse{
		Supervisors: make([]SupervisorResponse, 0, len(items)),
		Departments: departments,
	}
	for _, s := range items {
		resp.Supervisors = append(resp.Supervisors, FromDomainSupervisor(s))
	}
	resp.Total = len(resp.Supervisors)
	return resp
}
