package supervisors

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// Directory интерфейс справочника руководителей
type Directory interface {
	ListSupervisors(ctx context.Context) ([]*domain.Supervisor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
