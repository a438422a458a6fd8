package equipment_stats

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/service/equipment/models"
)

type EquipmentService interface {
	Stats(ctx context.Context) (*models.EquipmentStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
