package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// RuleStore интерфейс хранилища календарных правил
type RuleStore interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, domain.HolidayKind, error)
	ActiveRules(ctx context.Context) ([]*domain.BookingRule, error)
	ActiveBreaks(ctx context.Context) ([]*domain.MaintenanceBreak, error)
}

// SlotCatalog интерфейс каталога слотов
type SlotCatalog interface {
	SlotsForDate(ctx context.Context, equipmentID string, date time.Time) ([]domain.Slot, error)
}

// EquipmentDirectory интерфейс справочника оборудования
type EquipmentDirectory interface {
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// Metrics интерфейс метрик резолвера
type Metrics interface {
	IncResolution(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
