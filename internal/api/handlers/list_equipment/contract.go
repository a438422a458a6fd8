package list_equipment

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

type EquipmentService interface {
	List(ctx context.Context, query, status string) ([]*domain.Equipment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
