package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// Resolver вычисляет статус каждого слота оборудования на дату.
// Не имеет побочных эффектов: повторный вызов при неизменных хранилищах дает тот же результат.
type Resolver struct {
	rules         RuleStore
	catalog       SlotCatalog
	equipment     EquipmentDirectory
	bookings      BookingRepository
	halfDayCutoff types.TimeString
	metrics       Metrics
	logger        Logger
}

// NewResolver создает новый экземпляр резолвера.
// Пустой halfDayCutoff заменяется на domain.DefaultHalfDayCutoff.
func NewResolver(
	rules RuleStore,
	catalog SlotCatalog,
	equipment EquipmentDirectory,
	bookings BookingRepository,
	halfDayCutoff types.TimeString,
	metrics Metrics,
	logger Logger,
) *Resolver {
	if halfDayCutoff.IsZero() {
		halfDayCutoff = domain.DefaultHalfDayCutoff
	}
	return &Resolver{
		rules:         rules,
		catalog:       catalog,
		equipment:     equipment,
		bookings:      bookings,
		halfDayCutoff: halfDayCutoff,
		metrics:       metrics,
		logger:        logger,
	}
}

// Resolve возвращает статус каждого слота каталога в порядке каталога
func (r *Resolver) Resolve(ctx context.Context, equipmentID string, date time.Time) ([]domain.SlotAvailability, error) {
	date = domain.DateOnly(date)

	day, err := r.loadDay(ctx, equipmentID, date)
	if err != nil {
		return nil, err
	}

	slots, err := r.catalog.SlotsForDate(ctx, equipmentID, date)
	if err != nil {
		r.logger.Error("Resolve: failed to get slots for equipment=%s: %v", equipmentID, err)
		return nil, fmt.Errorf("%w: slots: %v", ErrInternal, err)
	}

	result := make([]domain.SlotAvailability, 0, len(slots))
	available := 0
	for _, slot := range slots {
		status := evaluate(day, slot)
		if status == domain.SlotAvailable {
			available++
		}
		r.metrics.IncResolution(string(status))
		result = append(result, domain.SlotAvailability{Slot: slot, Status: status})
	}

	r.logger.Info("Resolve: equipment=%s, date=%s, %d/%d slots available",
		equipmentID, date.Format(domain.DateFormat), available, len(result))
	return result, nil
}

// ResolveSlot вычисляет статус одного слота
func (r *Resolver) ResolveSlot(ctx context.Context, equipmentID string, date time.Time, slotID string) (*domain.SlotAvailability, error) {
	all, err := r.Resolve(ctx, equipmentID, date)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Slot.ID == slotID {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("%w: equipment=%s slot=%s", ErrSlotNotFound, equipmentID, slotID)
}

// loadDay читает текущее состояние хранилищ; кеширования нет
func (r *Resolver) loadDay(ctx context.Context, equipmentID string, date time.Time) (*dayState, error) {
	equipment, err := r.equipment.GetEquipment(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrEquipmentNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrEquipmentNotFound, equipmentID)
		}
		r.logger.Error("Resolve: failed to get equipment=%s: %v", equipmentID, err)
		return nil, fmt.Errorf("%w: equipment: %v", ErrInternal, err)
	}

	isHoliday, kind, err := r.rules.IsHoliday(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: holidays: %v", ErrInternal, err)
	}

	rules, err := r.rules.ActiveRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: rules: %v", ErrInternal, err)
	}

	breaks, err := r.rules.ActiveBreaks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: breaks: %v", ErrInternal, err)
	}

	active, err := r.bookings.List(ctx, domain.BookingFilter{
		EquipmentID: equipmentID,
		StartDate:   &date,
		EndDate:     &date,
		ActiveOnly:  true,
	})
	if err != nil {
		r.logger.Error("Resolve: failed to get bookings for equipment=%s: %v", equipmentID, err)
		return nil, fmt.Errorf("%w: bookings: %v", ErrInternal, err)
	}

	occupied := make(map[string]bool, len(active))
	for _, b := range active {
		occupied[b.SlotID] = true
	}

	return &dayState{
		equipment:     equipment,
		weekday:       date.Weekday(),
		holiday:       isHoliday,
		holidayKind:   kind,
		halfDayCutoff: r.halfDayCutoff,
		rules:         rules,
		breaks:        breaks,
		occupied:      occupied,
	}, nil
}
