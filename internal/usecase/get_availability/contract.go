package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// AvailabilityResolver интерфейс резолвера доступности слотов
type AvailabilityResolver interface {
	Resolve(ctx context.Context, equipmentID string, date time.Time) ([]domain.SlotAvailability, error)
}

// EquipmentDirectory интерфейс справочника оборудования
type EquipmentDirectory interface {
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
