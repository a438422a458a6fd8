package request_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityResolver интерфейс резолвера доступности слотов
type AvailabilityResolver interface {
	ResolveSlot(ctx context.Context, equipmentID string, date time.Time, slotID string) (*domain.SlotAvailability, error)
}

// Directory интерфейс справочника оборудования и студентов
type Directory interface {
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	GetStudent(ctx context.Context, id string) (*domain.Student, error)
}

// Locker интерфейс блокировки по ключу слота
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик запросов на бронирование
type Metrics interface {
	IncBookingRequest(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
