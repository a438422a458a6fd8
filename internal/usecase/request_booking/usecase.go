package request_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/booking"
	directoryRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-LabBookingService/internal/service/availability"
	"github.com/m04kA/SMC-LabBookingService/pkg/keylock"
	"github.com/m04kA/SMC-LabBookingService/pkg/metrics"
)

// UseCase use case для запроса бронирования слота студентом
type UseCase struct {
	bookingRepo  BookingRepository
	resolver     AvailabilityResolver
	directory    Directory
	locker       Locker
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resolver AvailabilityResolver,
	directory Directory,
	locker Locker,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		resolver:     resolver,
		directory:    directory,
		locker:       locker,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case бронирования.
// Проверка доступности и вставка выполняются под блокировкой ключа (оборудование, дата, слот).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.IncBookingRequest(resultLabel(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("RequestBooking: student=%s, equipment=%s, date=%s, slot=%s",
		req.Actor.ID, req.EquipmentID, date.Format(domain.DateFormat), req.SlotID)

	// 2. Проверяем роль
	if !req.Actor.Can(domain.ActionRequestBooking) {
		uc.logger.Warn("RequestBooking: role %s cannot request bookings", req.Actor.Role)
		return nil, ErrForbidden
	}

	// 3. Проверяем, что дата не в прошлом
	if err := validateDate(date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("RequestBooking: %v", err)
		return nil, err
	}

	// 4. Получаем студента и его руководителя
	student, err := uc.directory.GetStudent(ctx, req.Actor.ID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrStudentNotFound) {
			uc.logger.Warn("RequestBooking: student id=%s not found", req.Actor.ID)
			return nil, ErrStudentNotFound
		}
		uc.logger.Error("RequestBooking: failed to get student id=%s: %v", req.Actor.ID, err)
		return nil, fmt.Errorf("%w: failed to get student: %v", ErrInternal, err)
	}

	// 5. Получаем оборудование
	equipment, err := uc.directory.GetEquipment(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrEquipmentNotFound) {
			uc.logger.Warn("RequestBooking: equipment id=%s not found", req.EquipmentID)
			return nil, ErrEquipmentNotFound
		}
		uc.logger.Error("RequestBooking: failed to get equipment id=%s: %v", req.EquipmentID, err)
		return nil, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
	}

	var (
		result *domain.Booking
		slot   domain.Slot
	)

	// 6. Под блокировкой слота заново вычисляем доступность и создаем бронирование
	key := domain.SlotKey(req.EquipmentID, date, req.SlotID)
	err = uc.locker.WithLock(ctx, key, func(lockCtx context.Context) error {
		// 6.1. Повторная проверка доступности именно этого слота
		resolved, err := uc.resolver.ResolveSlot(lockCtx, req.EquipmentID, date, req.SlotID)
		if err != nil {
			switch {
			case errors.Is(err, availability.ErrSlotNotFound):
				uc.logger.Warn("RequestBooking: slot %s not in catalog of equipment=%s", req.SlotID, req.EquipmentID)
				return ErrSlotNotFound
			case errors.Is(err, availability.ErrEquipmentNotFound):
				return ErrEquipmentNotFound
			default:
				uc.logger.Error("RequestBooking: failed to resolve slot: %v", err)
				return fmt.Errorf("%w: failed to resolve slot: %v", ErrInternal, err)
			}
		}

		if !resolved.IsAvailable() {
			uc.logger.Warn("RequestBooking: slot %s is %s", key, resolved.Status)
			return fmt.Errorf("%w: %s", ErrSlotUnavailable, resolved.Status)
		}
		slot = resolved.Slot

		// 6.2. Draft -> Pending
		if err := domain.Transition(domain.StatusDraft, domain.StatusPending); err != nil {
			uc.logger.Error("RequestBooking: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// 6.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(lockCtx, &domain.Booking{
			EquipmentID:  req.EquipmentID,
			StudentID:    student.ID,
			SupervisorID: student.SupervisorID,
			Date:         date,
			SlotID:       req.SlotID,
			Status:       domain.StatusPending,
			Cost:         slot.BaseCost,
			CreatedAt:    uc.timeProvider.Now(),
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotOccupied) {
				uc.logger.Warn("RequestBooking: slot %s already occupied", key)
				return fmt.Errorf("%w: %s", ErrSlotUnavailable, domain.SlotBookedByOther)
			}
			uc.logger.Error("RequestBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, keylock.ErrLockTimeout) {
			uc.logger.Warn("RequestBooking: lock wait for %s cancelled", key)
			return nil, fmt.Errorf("%w: %v", ErrLockTimeout, err)
		}
		if errors.Is(err, keylock.ErrBackend) {
			uc.logger.Error("RequestBooking: lock backend error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("RequestBooking: successfully created booking id=%s", result.ID)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		EquipmentID:   result.EquipmentID,
		StudentID:     result.StudentID,
		SupervisorID:  result.SupervisorID,
		Date:          result.Date,
		SlotID:        result.SlotID,
		Status:        string(result.Status),
		Cost:          result.Cost,
		EquipmentName: equipment.Name,
		SlotName:      slot.Name,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		CreatedAt:     result.CreatedAt,
	}, nil
}

// resultLabel метка результата для метрики booking_requests_total
func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultCreated
	case errors.Is(err, ErrSlotUnavailable):
		return metrics.ResultSlotUnavailable
	case errors.Is(err, ErrInternal), errors.Is(err, ErrLockTimeout):
		return metrics.ResultError
	default:
		return metrics.ResultInvalid
	}
}
