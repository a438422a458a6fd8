package settings

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// RuleRepository интерфейс хранилища праздников, правил и перерывов
type RuleRepository interface {
	AddHoliday(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error)
	RemoveHoliday(ctx context.Context, id string) error
	ListHolidays(ctx context.Context) ([]*domain.Holiday, error)

	AddRule(ctx context.Context, rule *domain.BookingRule) (*domain.BookingRule, error)
	RemoveRule(ctx context.Context, id string) error
	ToggleRule(ctx context.Context, id string) (*domain.BookingRule, error)
	ListRules(ctx context.Context) ([]*domain.BookingRule, error)

	AddBreak(ctx context.Context, b *domain.MaintenanceBreak) (*domain.MaintenanceBreak, error)
	RemoveBreak(ctx context.Context, id string) error
	ToggleBreak(ctx context.Context, id string) (*domain.MaintenanceBreak, error)
	ListBreaks(ctx context.Context) ([]*domain.MaintenanceBreak, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
