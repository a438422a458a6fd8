package decide_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LabBookingService/pkg/keylock"
	"github.com/m04kA/SMC-LabBookingService/pkg/ptr"
)

// UseCase use case для одобрения или отклонения бронирования руководителем
type UseCase struct {
	bookingRepo  BookingRepository
	locker       Locker
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
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
		locker:       locker,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case принятия решения.
// Смена статуса выполняется под той же блокировкой слота, что и создание бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DecideBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("DecideBooking: booking=%s, supervisor=%s, approve=%t", req.BookingID, req.Actor.ID, req.Approve)

	// 2. Проверяем роль
	if !req.Actor.Can(domain.ActionDecideBooking) {
		uc.logger.Warn("DecideBooking: role %s cannot decide bookings", req.Actor.Role)
		return nil, ErrForbidden
	}

	// 3. Получаем бронирование
	booking, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	// 4. Решение принимает только назначенный руководитель
	if booking.SupervisorID != req.Actor.ID {
		uc.logger.Warn("DecideBooking: supervisor=%s is not assigned to booking=%s", req.Actor.ID, booking.ID)
		return nil, ErrForbidden
	}

	target := domain.StatusRejected
	decision := DecisionRejected
	var reason *string
	if req.Approve {
		target = domain.StatusApproved
		decision = DecisionApproved
	} else {
		reason = ptr.Ptr(strings.TrimSpace(req.Reason))
	}

	var updated *domain.Booking

	// 5. Под блокировкой слота перечитываем бронирование и меняем статус
	key := domain.SlotKey(booking.EquipmentID, booking.Date, booking.SlotID)
	err = uc.locker.WithLock(ctx, key, func(lockCtx context.Context) error {
		current, err := uc.getBooking(lockCtx, req.BookingID)
		if err != nil {
			return err
		}

		// 5.1. Решение возможно только для Pending
		if current.Status != domain.StatusPending {
			uc.logger.Warn("DecideBooking: booking=%s has status %s", current.ID, current.Status)
			return fmt.Errorf("%w: status is %s", ErrNotPending, current.Status)
		}

		// 5.2. Проверяем переход по state machine
		if err := domain.Transition(current.Status, target); err != nil {
			uc.logger.Error("DecideBooking: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// 5.3. Сохраняем новый статус
		updated, err = uc.bookingRepo.CompareAndSetStatus(lockCtx, current.ID, bookingRepo.StatusUpdate{
			From:            domain.StatusPending,
			To:              target,
			RejectionReason: reason,
			DecidedAt:       ptr.Ptr(uc.timeProvider.Now()),
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusMismatch) {
				return fmt.Errorf("%w: %v", ErrNotPending, err)
			}
			uc.logger.Error("DecideBooking: failed to update booking=%s: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, keylock.ErrLockTimeout) {
			uc.logger.Warn("DecideBooking: lock wait for %s cancelled", key)
			return nil, fmt.Errorf("%w: %v", ErrLockTimeout, err)
		}
		if errors.Is(err, keylock.ErrBackend) {
			uc.logger.Error("DecideBooking: lock backend error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.metrics.IncDecision(decision)
	uc.logger.Info("DecideBooking: booking=%s is now %s", updated.ID, updated.Status)

	return &Response{
		ID:              updated.ID,
		EquipmentID:     updated.EquipmentID,
		StudentID:       updated.StudentID,
		SupervisorID:    updated.SupervisorID,
		Date:            updated.Date,
		SlotID:          updated.SlotID,
		Status:          string(updated.Status),
		Cost:            updated.Cost,
		RejectionReason: updated.RejectionReason,
		DecidedAt:       updated.DecidedAt,
	}, nil
}

func (uc *UseCase) getBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("DecideBooking: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("DecideBooking: failed to get booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}
