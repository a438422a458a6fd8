package booking_report

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/service/reports/models"
)

type ReportService interface {
	BookingReport(ctx context.Context, actor *domain.Actor, req *models.BookingReportRequest) (*models.BookingReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
