package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	CompareAndSetStatus(ctx context.Context, id string, upd bookingRepo.StatusUpdate) (*domain.Booking, error)
}

// EquipmentDirectory интерфейс справочника оборудования
type EquipmentDirectory interface {
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
}

// SlotCatalog интерфейс каталога слотов
type SlotCatalog interface {
	SlotByID(ctx context.Context, equipmentID string, date time.Time, slotID string) (*domain.Slot, error)
}

// Metrics интерфейс метрик бронирований
type Metrics interface {
	AddCompleted(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
