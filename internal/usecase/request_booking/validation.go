package request_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Actor == nil || req.Actor.ID == "" {
		return fmt.Errorf("%w: user identity is required", ErrInvalidInput)
	}

	if req.EquipmentID == "" {
		return fmt.Errorf("%w: equipmentId is required", ErrInvalidInput)
	}

	if req.SlotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, bookingDate.Format(domain.DateFormat))
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
