package manage_settings

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/service/settings/models"
)

type SettingsService interface {
	ListHolidays(ctx context.Context) ([]models.HolidayResponse, error)
	AddHoliday(ctx context.Context, actor *domain.Actor, req *models.CreateHolidayRequest) (*models.HolidayResponse, error)
	RemoveHoliday(ctx context.Context, actor *domain.Actor, id string) error

	ListRules(ctx context.Context) ([]models.RuleResponse, error)
	AddRule(ctx context.Context, actor *domain.Actor, req *models.CreateRuleRequest) (*models.RuleResponse, error)
	RemoveRule(ctx context.Context, actor *domain.Actor, id string) error
	ToggleRule(ctx context.Context, actor *domain.Actor, id string) (*models.RuleResponse, error)

	ListBreaks(ctx context.Context) ([]models.BreakResponse, error)
	AddBreak(ctx context.Context, actor *domain.Actor, req *models.CreateBreakRequest) (*models.BreakResponse, error)
	RemoveBreak(ctx context.Context, actor *domain.Actor, id string) error
	ToggleBreak(ctx context.Context, actor *domain.Actor, id string) (*models.BreakResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
