package decide_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/api/middleware"
	decideBooking "github.com/m04kA/SMC-LabBookingService/internal/usecase/decide_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "для отклонения необходимо указать причину (не более 500 символов)"
	msgNotFound           = "бронирование не найдено"
	msgNotPending         = "решение по бронированию уже принято"
	msgForbidden          = "решение принимает только руководитель студента"
	msgLockTimeout        = "слот сейчас занят другим запросом, повторите попытку"
)

type Handler struct {
	useCase DecideBookingUseCase
	logger  Logger
}

func NewHandler(useCase DecideBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/decision - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DecisionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, decideBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/decision - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, decideBooking.ErrNotPending):
			h.logger.Warn("PATCH /bookings/{id}/decision - Booking not pending: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, decideBooking.ErrForbidden):
			h.logger.Warn("PATCH /bookings/{id}/decision - Access denied: booking_id=%s, user_id=%s", bookingID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, decideBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, decideBooking.ErrLockTimeout):
			handlers.RespondServiceUnavailable(w, msgLockTimeout)

		default:
			h.logger.Error("PATCH /bookings/{id}/decision - Failed to decide: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/decision - Booking %s: booking_id=%s, user_id=%s",
		result.Status, bookingID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
