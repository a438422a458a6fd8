package decide_booking

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// Decision значения для метрики решений
const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

// Request модель решения руководителя по бронированию
type Request struct {
	Actor     *domain.Actor
	BookingID string
	Approve   bool
	Reason    string // Обязательна при отклонении
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID              string
	EquipmentID     string
	StudentID       string
	SupervisorID    string
	Date            time.Time
	SlotID          string
	Status          string
	Cost            float64
	RejectionReason *string
	DecidedAt       *time.Time
}
