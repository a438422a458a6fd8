package decide_booking

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	decideBooking "github.com/m04kA/SMC-LabBookingService/internal/usecase/decide_booking"
)

// DecisionRequest HTTP request model
type DecisionRequest struct {
	Approve bool    `json:"approve"`
	Reason  *string `json:"reason,omitempty"` // Обязательна при approve=false
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	EquipmentID     string  `json:"equipmentId"`
	StudentID       string  `json:"studentId"`
	SupervisorID    string  `json:"supervisorId"`
	Date            string  `json:"date"`
	SlotID          string  `json:"slotId"`
	Status          string  `json:"status"`
	Cost            float64 `json:"cost"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	DecidedAt       *string `json:"decidedAt,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *DecisionRequest) ToUseCaseRequest(actor *domain.Actor, bookingID string) *decideBooking.Request {
	reason := ""
	if r.Reason != nil {
		reason = *r.Reason
	}

	return &decideBooking.Request{
		Actor:     actor,
		BookingID: bookingID,
		Approve:   r.Approve,
		Reason:    reason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *decideBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:              resp.ID,
		EquipmentID:     resp.EquipmentID,
		StudentID:       resp.StudentID,
		SupervisorID:    resp.SupervisorID,
		Date:            resp.Date.Format(domain.DateFormat),
		SlotID:          resp.SlotID,
		Status:          resp.Status,
		Cost:            resp.Cost,
		RejectionReason: resp.RejectionReason,
	}
	if resp.DecidedAt != nil {
		decidedAt := resp.DecidedAt.Format(time.RFC3339)
		out.DecidedAt = &decidedAt
	}
	return out
}
