package get_availability

import (
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-LabBookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string         `json:"date"`
	EquipmentID     string         `json:"equipmentId"`
	EquipmentName   string         `json:"equipmentName"`
	EquipmentStatus string         `json:"equipmentStatus"`
	Place           string         `json:"place,omitempty"`
	AvailableCount  int            `json:"availableCount"`
	Slots           []SlotResponse `json:"slots"`
}

// SlotResponse слот со статусом
type SlotResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Cost      float64 `json:"cost"`
	Status    string  `json:"status"`
	Available bool    `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:        s.ID,
			Name:      s.Name,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Cost:      s.Cost,
			Status:    s.Status,
			Available: s.Status == string(domain.SlotAvailable),
		})
	}

	return &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		EquipmentID:     resp.EquipmentID,
		EquipmentName:   resp.EquipmentName,
		EquipmentStatus: resp.EquipmentStatus,
		Place:           resp.Place,
		AvailableCount:  resp.AvailableCount,
		Slots:           slots,
	}
}
