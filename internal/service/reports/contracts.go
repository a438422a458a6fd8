package reports

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// Directory интерфейс справочника оборудования и руководителей
type Directory interface {
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	ListSupervisors(ctx context.Context) ([]*domain.Supervisor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
