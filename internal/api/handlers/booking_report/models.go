package booking_report

import (
	"net/url"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/service/reports/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(query url.Values) (*models.BookingReportRequest, error) {
	req := &models.BookingReportRequest{
		EquipmentID:  query.Get("equipmentId"),
		SupervisorID: query.Get("supervisorId"),
		Department:   query.Get("department"),
	}

	if from := query.Get("from"); from != "" {
		date, err := domain.ParseDate(from)
		if err != nil {
			return nil, err
		}
		req.From = &date
	}

	if to := query.Get("to"); to != "" {
		date, err := domain.ParseDate(to)
		if err != nil {
			return nil, err
		}
		req.To = &date
	}

	return req, nil
}
