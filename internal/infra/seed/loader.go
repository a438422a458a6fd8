package seed

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-LabBookingService/internal/config"
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/service/slotcatalog"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// Directory справочник, наполняемый при старте
type Directory interface {
	AddEquipment(e domain.Equipment) error
	AddSupervisor(s domain.Supervisor) error
	AddStudent(s domain.Student) error
}

// RuleStore хранилище праздников, правил и перерывов
type RuleStore interface {
	AddHoliday(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error)
	AddRule(ctx context.Context, rule *domain.BookingRule) (*domain.BookingRule, error)
	AddBreak(ctx context.Context, b *domain.MaintenanceBreak) (*domain.MaintenanceBreak, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Load наполняет хранилища и строит каталог слотов
func Load(ctx context.Context, data *config.Seed, directory Directory, rules RuleStore, logger Logger) (*slotcatalog.Catalog, error) {
	// 1. Каталог слотов
	catalog, err := slotcatalog.NewCatalog(data.DefaultSlots())
	if err != nil {
		return nil, fmt.Errorf("slot catalog: %w", err)
	}

	// 2. Справочник
	for _, e := range data.Equipment {
		equipment, err := e.ToDomain()
		if err != nil {
			return nil, err
		}
		if err := directory.AddEquipment(equipment); err != nil {
			return nil, err
		}
	}
	for _, s := range data.Supervisors {
		if err := directory.AddSupervisor(s.ToDomain()); err != nil {
			return nil, err
		}
	}
	for _, s := range data.Students {
		if err := directory.AddStudent(s.ToDomain()); err != nil {
			return nil, err
		}
	}

	// 3. Собственные каталоги оборудования
	for _, o := range data.SlotOverrides {
		slots := o.OverrideSlots()
		if o.Generate != nil {
			slots, err = slotcatalog.Generate(
				types.TimeString(o.Generate.Open),
				types.TimeString(o.Generate.Close),
				o.Generate.DurationMinutes,
				o.Generate.BaseCost,
			)
			if err != nil {
				return nil, fmt.Errorf("slot override for equipment %q: %w", o.EquipmentID, err)
			}
		}
		if err := catalog.SetOverride(o.EquipmentID, slots); err != nil {
			return nil, fmt.Errorf("slot override for equipment %q: %w", o.EquipmentID, err)
		}
	}

	// 4. Праздники, правила, перерывы
	for _, h := range data.Holidays {
		holiday, err := h.ToDomain()
		if err != nil {
			return nil, err
		}
		if _, err := rules.AddHoliday(ctx, holiday); err != nil {
			return nil, err
		}
	}
	for _, r := range data.Rules {
		rule, err := r.ToDomain()
		if err != nil {
			return nil, err
		}
		if _, err := rules.AddRule(ctx, rule); err != nil {
			return nil, err
		}
	}
	for _, b := range data.Breaks {
		br, err := b.ToDomain()
		if err != nil {
			return nil, err
		}
		if _, err := rules.AddBreak(ctx, br); err != nil {
			return nil, err
		}
	}

	logger.Info("Seed loaded: %d equipment, %d supervisors, %d students, %d holidays, %d rules, %d breaks, %d slot overrides",
		len(data.Equipment), len(data.Supervisors), len(data.Students),
		len(data.Holidays), len(data.Rules), len(data.Breaks), len(data.SlotOverrides))
	return catalog, nil
}
