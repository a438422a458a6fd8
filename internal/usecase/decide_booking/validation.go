package decide_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Actor == nil || req.Actor.ID == "" {
		return fmt.Errorf("%w: user identity is required", ErrInvalidInput)
	}

	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	if req.Approve {
		return nil
	}

	// Для отклонения причина обязательна
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(reason) > domain.MaxRejectionReasonLength {
		return fmt.Errorf("%w: rejection reason exceeds %d characters", ErrInvalidInput, domain.MaxRejectionReasonLength)
	}

	return nil
}
