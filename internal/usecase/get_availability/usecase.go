package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-LabBookingService/internal/service/availability"
)

// UseCase use case для получения статусов слотов оборудования на дату
type UseCase struct {
	resolver  AvailabilityResolver
	equipment EquipmentDirectory
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resolver AvailabilityResolver, equipment EquipmentDirectory, logger Logger) *UseCase {
	return &UseCase{
		resolver:  resolver,
		equipment: equipment,
		logger:    logger,
	}
}

// Execute выполняет use case. Прошедшие даты не запрещены: статусы вычисляются так же.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetAvailability: equipment=%s, date=%s", req.EquipmentID, date.Format(domain.DateFormat))

	// 2. Получаем оборудование
	equipment, err := uc.equipment.GetEquipment(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrEquipmentNotFound) {
			uc.logger.Warn("GetAvailability: equipment id=%s not found", req.EquipmentID)
			return nil, ErrEquipmentNotFound
		}
		uc.logger.Error("GetAvailability: failed to get equipment id=%s: %v", req.EquipmentID, err)
		return nil, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
	}

	// 3. Вычисляем статусы слотов
	resolved, err := uc.resolver.Resolve(ctx, req.EquipmentID, date)
	if err != nil {
		if errors.Is(err, availability.ErrEquipmentNotFound) {
			return nil, ErrEquipmentNotFound
		}
		uc.logger.Error("GetAvailability: failed to resolve slots: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve slots: %v", ErrInternal, err)
	}

	// 4. Формируем ответ
	resp := &Response{
		Date:            date,
		EquipmentID:     equipment.ID,
		EquipmentName:   equipment.Name,
		EquipmentStatus: string(equipment.Status),
		Place:           equipment.Place,
		Slots:           make([]Slot, 0, len(resolved)),
	}
	for _, r := range resolved {
		if r.IsAvailable() {
			resp.AvailableCount++
		}
		resp.Slots = append(resp.Slots, Slot{
			ID:        r.Slot.ID,
			Name:      r.Slot.Name,
			StartTime: r.Slot.StartTime,
			EndTime:   r.Slot.EndTime,
			Cost:      r.Slot.BaseCost,
			Status:    string(r.Status),
		})
	}

	uc.logger.Info("GetAvailability: %d of %d slots available", resp.AvailableCount, len(resp.Slots))
	return resp, nil
}
