package list_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-LabBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(query url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{
		StudentID:    query.Get("studentId"),
		SupervisorID: query.Get("supervisorId"),
		EquipmentID:  query.Get("equipmentId"),
		Period:       models.Period(query.Get("period")),
		Query:        query.Get("q"),
	}

	// Парсим status если указан
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req
}
