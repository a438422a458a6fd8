package update_equipment_status

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

type EquipmentService interface {
	UpdateStatus(ctx context.Context, actor *domain.Actor, id, status string) (*domain.Equipment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
