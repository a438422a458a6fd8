package equipment

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// EquipmentRepository интерфейс справочника оборудования
type EquipmentRepository interface {
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]*domain.Equipment, error)
	UpdateEquipmentStatus(ctx context.Context, id string, status domain.EquipmentStatus) (*domain.Equipment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
