package request_booking

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	requestBooking "github.com/m04kA/SMC-LabBookingService/internal/usecase/request_booking"
)

// RequestBookingRequest HTTP request model
type RequestBookingRequest struct {
	EquipmentID string `json:"equipmentId"`
	Date        string `json:"date"`   // "2025-06-02"
	SlotID      string `json:"slotId"` // "morning-1"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	EquipmentID   string  `json:"equipmentId"`
	EquipmentName string  `json:"equipmentName"`
	StudentID     string  `json:"studentId"`
	SupervisorID  string  `json:"supervisorId"`
	Date          string  `json:"date"`
	SlotID        string  `json:"slotId"`
	SlotName      string  `json:"slotName"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	Cost          float64 `json:"cost"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RequestBookingRequest) ToUseCaseRequest(actor *domain.Actor) (*requestBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &requestBooking.Request{
		Actor:       actor,
		EquipmentID: r.EquipmentID,
		Date:        date,
		SlotID:      r.SlotID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		EquipmentID:   resp.EquipmentID,
		EquipmentName: resp.EquipmentName,
		StudentID:     resp.StudentID,
		SupervisorID:  resp.SupervisorID,
		Date:          resp.Date.Format(domain.DateFormat),
		SlotID:        resp.SlotID,
		SlotName:      resp.SlotName,
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		Status:        resp.Status,
		Cost:          resp.Cost,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
